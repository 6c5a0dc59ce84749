package main

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/arunvm123/eventbooking-demo/auth"
	"github.com/arunvm123/eventbooking-demo/model"
	"github.com/arunvm123/eventbooking-demo/rules"
	"github.com/arunvm123/eventbooking-demo/store"
	"github.com/gin-gonic/gin"
)

const unknownEventTitle = "Unknown Event"

type EventHandler struct {
	store *store.Store
}

func NewEventHandler(st *store.Store) *EventHandler {
	return &EventHandler{store: st}
}

// ListEvents returns every event with its remaining seats
func (h *EventHandler) ListEvents(c *gin.Context) {
	events := h.store.ListEvents()

	responses := make([]model.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *events[i].ToEventResponse(rules.MaxSelectableTickets(events[i].AvailableSeats())))
	}

	c.JSON(http.StatusOK, model.EventListResponse{
		Events: responses,
		Total:  len(responses),
	})
}

// GetEvent retrieves a specific event
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, ok := h.store.Event(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: "Event not found",
		})
		return
	}

	c.JSON(http.StatusOK, event.ToEventResponse(rules.MaxSelectableTickets(event.AvailableSeats())))
}

// GetAvailability reports open seats; unknown events simply have none
func (h *EventHandler) GetAvailability(c *gin.Context) {
	eventID := c.Param("id")
	available := h.store.AvailableSeats(eventID)

	c.JSON(http.StatusOK, model.AvailabilityResponse{
		EventID:        eventID,
		AvailableSeats: available,
		MaxTickets:     rules.MaxSelectableTickets(available),
	})
}

type BookingHandler struct {
	store *store.Store
}

func NewBookingHandler(st *store.Store) *BookingHandler {
	return &BookingHandler{store: st}
}

// SubmitBooking validates and records a booking for the event in the path
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	eventID := c.Param("id")

	var req model.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	if _, ok := h.store.Event(eventID); !ok {
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: "Event not found",
		})
		return
	}

	booking, err := h.store.PlaceBooking(c.Request.Context(), req.ToCreateBookingRequest(eventID))
	if err != nil {
		writeStoreError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking.ToBookingResponse())
}

type AdminHandler struct {
	store    *store.Store
	sessions *auth.SessionRegistry
	tokens   *auth.TokenService
}

func NewAdminHandler(st *store.Store, sessions *auth.SessionRegistry, tokens *auth.TokenService) *AdminHandler {
	return &AdminHandler{
		store:    st,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login checks the admin credentials and opens a session
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	session, ok := h.sessions.Login(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error:   "authentication_failed",
			Message: "Invalid username or password",
		})
		return
	}

	token, err := h.tokens.GenerateToken(session.ID())
	if err != nil {
		h.sessions.Logout(session.ID())
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(h.tokens.TTL().Seconds()),
	})
}

// Logout clears the admin flag of the caller's session
func (h *AdminHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.GetString(sessionIDKey))
	c.JSON(http.StatusOK, model.SessionResponse{IsAdmin: false})
}

func (h *AdminHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, model.SessionResponse{IsAdmin: true})
}

// CreateEvent adds a new event to the catalogue
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req model.CreateEventAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	event, err := h.store.CreateEvent(c.Request.Context(), req.ToCreateEventRequest())
	if err != nil {
		writeStoreError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event.ToEventResponse(rules.MaxSelectableTickets(event.AvailableSeats())))
}

// ListBookings returns all bookings, newest first, with their event title
func (h *AdminHandler) ListBookings(c *gin.Context) {
	titles := make(map[string]string)
	for _, e := range h.store.ListEvents() {
		titles[e.ID] = e.Title
	}

	bookings := h.store.ListBookings()
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})

	summaries := make([]model.AdminBookingSummary, 0, len(bookings))
	for i := range bookings {
		title, ok := titles[bookings[i].EventID]
		if !ok {
			title = unknownEventTitle
		}
		summaries = append(summaries, bookings[i].ToAdminBookingSummary(title))
	}

	c.JSON(http.StatusOK, model.AdminBookingsResponse{
		Bookings: summaries,
		Total:    len(summaries),
	})
}

type HealthHandler struct {
	store   *store.Store
	storage string
}

func NewHealthHandler(st *store.Store, storage string) *HealthHandler {
	return &HealthHandler{store: st, storage: storage}
}

// HealthCheck handles health check endpoint
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error:   "service_unavailable",
			Message: "Storage ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Service:   "eventbooking",
		Storage:   h.storage,
		Timestamp: time.Now(),
	})
}

// writeStoreError maps rule rejections to 4xx responses and anything else,
// such as a failed storage write, to a 500.
func writeStoreError(c *gin.Context, err error, internalMessage string) {
	switch {
	case errors.Is(err, rules.ErrValidation):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	case errors.Is(err, rules.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, model.ErrorResponse{
			Error:   "duplicate_booking",
			Message: err.Error(),
		})
	case errors.Is(err, rules.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, model.ErrorResponse{
			Error:   "capacity_exceeded",
			Message: err.Error(),
		})
	default:
		log.Printf("%s: %v", internalMessage, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: internalMessage,
		})
	}
}
