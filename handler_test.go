package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/arunvm123/eventbooking-demo/config"
	"github.com/arunvm123/eventbooking-demo/kvstore/memory"
	"github.com/arunvm123/eventbooking-demo/model"
	"github.com/arunvm123/eventbooking-demo/repository/kv"
	"github.com/arunvm123/eventbooking-demo/store"
	"github.com/gin-gonic/gin"
)

// tickClock advances one minute on every reading.
type tickClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func testConfig() *config.Config {
	return &config.Config{
		Port:      "0",
		JWTSecret: "test-secret",
		Admin:     config.Admin{Username: "admin", Password: "admin123"},
		Session:   config.Session{TTLMinutes: 60},
		Storage:   config.Storage{Driver: config.StorageMemory, SeedDefaults: true},
	}
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := kv.NewKVRepository(memory.NewMemoryStore(), "")
	st, err := store.New(context.Background(), repo,
		store.WithSeedDefaults(true),
		store.WithClock(&tickClock{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}),
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return SetupRouter(testConfig(), st), st
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/admin/login", "", model.LoginRequest{Username: "admin", Password: "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[model.LoginResponse](t, w)
	if resp.AccessToken == "" || resp.ExpiresIn != 3600 {
		t.Fatalf("unexpected login response %+v", resp)
	}
	return resp.AccessToken
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[model.HealthResponse](t, w)
	if resp.Status != "healthy" || resp.Storage != config.StorageMemory {
		t.Fatalf("unexpected health response %+v", resp)
	}
}

func TestEventEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	t.Run("list seeded events", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/events", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decode[model.EventListResponse](t, w)
		if resp.Total != 4 || len(resp.Events) != 4 {
			t.Fatalf("expected 4 events, got %+v", resp)
		}
		workshop := resp.Events[2]
		if workshop.EventID != "3" || workshop.AvailableSeats != 10 || workshop.MaxTickets != 10 {
			t.Fatalf("unexpected workshop %+v", workshop)
		}
	})

	t.Run("get event", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/events/2", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if resp := decode[model.EventResponse](t, w); resp.Title != "Music Festival" || resp.AvailableSeats != 180 {
			t.Fatalf("unexpected event %+v", resp)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/events/nope", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if resp := decode[model.ErrorResponse](t, w); resp.Error != "not_found" {
			t.Fatalf("unexpected error %+v", resp)
		}
	})

	t.Run("availability of unknown event is zero", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/events/nope/availability", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decode[model.AvailabilityResponse](t, w)
		if resp.AvailableSeats != 0 || resp.MaxTickets != 0 {
			t.Fatalf("unexpected availability %+v", resp)
		}
	})
}

func TestSubmitBooking(t *testing.T) {
	r, st := newTestServer(t)

	booking := func(name, email string, tickets int) model.SubmitBookingRequest {
		return model.SubmitBookingRequest{FullName: name, Email: email, NumberOfTickets: tickets}
	}

	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
		wantError  string
	}{
		{"created", "/api/events/3/bookings", booking(" Ada ", "ada@x.com", 4), http.StatusCreated, ""},
		{"duplicate email any case", "/api/events/3/bookings", booking("Ada", "ADA@x.com", 1), http.StatusConflict, "duplicate_booking"},
		{"over capacity", "/api/events/3/bookings", booking("Bob", "bob@x.com", 7), http.StatusConflict, "capacity_exceeded"},
		{"invalid email", "/api/events/3/bookings", booking("Cy", "not-an-email", 1), http.StatusBadRequest, "validation_failed"},
		{"zero tickets", "/api/events/3/bookings", booking("Cy", "cy@x.com", 0), http.StatusBadRequest, "validation_failed"},
		{"malformed body", "/api/events/3/bookings", `{"number_of_tickets":"two"}`, http.StatusBadRequest, "validation_failed"},
		{"unknown event", "/api/events/nope/bookings", booking("Di", "di@x.com", 1), http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, tt.path, "", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantError != "" {
				if resp := decode[model.ErrorResponse](t, w); resp.Error != tt.wantError {
					t.Fatalf("expected error %s, got %+v", tt.wantError, resp)
				}
			}
		})
	}

	if got := st.AvailableSeats("3"); got != 6 {
		t.Fatalf("expected 6 seats left after one booking of 4, got %d", got)
	}
	bookings := st.ListBookings()
	if len(bookings) != 1 || bookings[0].FullName != "Ada" {
		t.Fatalf("unexpected bookings %+v", bookings)
	}
}

func TestAdminAuth(t *testing.T) {
	r, _ := newTestServer(t)

	t.Run("bad credentials", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/admin/login", "", model.LoginRequest{Username: "admin", Password: "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/admin/login", "", map[string]string{"username": "admin"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no token", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/admin/session", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/admin/session", "not-a-jwt", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login then logout", func(t *testing.T) {
		token := login(t, r)

		w := doRequest(t, r, http.MethodGet, "/api/admin/session", token, nil)
		if w.Code != http.StatusOK || !decode[model.SessionResponse](t, w).IsAdmin {
			t.Fatalf("expected admin session, got %d: %s", w.Code, w.Body.String())
		}

		w = doRequest(t, r, http.MethodPost, "/api/admin/logout", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on logout, got %d", w.Code)
		}

		w = doRequest(t, r, http.MethodGet, "/api/admin/session", token, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected token rejected after logout, got %d", w.Code)
		}
	})

	t.Run("token does not survive a restart", func(t *testing.T) {
		token := login(t, r)
		restarted, _ := newTestServer(t)

		w := doRequest(t, restarted, http.MethodGet, "/api/admin/session", token, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 from a fresh process, got %d", w.Code)
		}
	})
}

func TestAdminCreateEvent(t *testing.T) {
	r, st := newTestServer(t)
	token := login(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/admin/events", token, model.CreateEventAPIRequest{
		Title:      "Jazz Night",
		Date:       "2025-10-01",
		Time:       "08:00 PM",
		Location:   "Blue Note",
		TotalSeats: 3,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode[model.EventResponse](t, w)
	if created.EventID == "" || created.BookedSeats != 0 || created.MaxTickets != 3 || created.ImageURL == "" {
		t.Fatalf("unexpected event %+v", created)
	}
	if _, ok := st.Event(created.EventID); !ok {
		t.Fatalf("event not in store")
	}

	w = doRequest(t, r, http.MethodPost, "/api/admin/events", token, model.CreateEventAPIRequest{
		Title: "Bad Date", Date: "01/10/2025", Time: "x", Location: "y", TotalSeats: 3,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodPost, "/api/admin/events", "", model.CreateEventAPIRequest{Title: "Anon"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestAdminListBookings(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()

	for _, email := range []string{"first@x.com", "second@x.com"} {
		w := doRequest(t, r, http.MethodPost, "/api/events/1/bookings", "", model.SubmitBookingRequest{
			FullName: "Guest", Email: email, NumberOfTickets: 1,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("booking %s: expected 201, got %d", email, w.Code)
		}
	}
	orphan := model.Booking{
		ID: "orphan", EventID: "gone", FullName: "Old", Email: "old@x.com",
		NumberOfTickets: 1, BookingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := st.AddBooking(ctx, orphan); err != nil {
		t.Fatalf("add orphan booking: %v", err)
	}

	token := login(t, r)
	w := doRequest(t, r, http.MethodGet, "/api/admin/bookings", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[model.AdminBookingsResponse](t, w)
	if resp.Total != 3 {
		t.Fatalf("expected 3 bookings, got %+v", resp)
	}
	if resp.Bookings[0].Email != "second@x.com" || resp.Bookings[1].Email != "first@x.com" {
		t.Fatalf("expected newest first, got %+v", resp.Bookings)
	}
	if resp.Bookings[0].EventTitle != "Tech Conference 2025" {
		t.Fatalf("expected event title, got %s", resp.Bookings[0].EventTitle)
	}
	if resp.Bookings[2].EventTitle != unknownEventTitle {
		t.Fatalf("expected %q for orphan, got %s", unknownEventTitle, resp.Bookings[2].EventTitle)
	}
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodOptions, "/api/events", "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS header")
	}
}
