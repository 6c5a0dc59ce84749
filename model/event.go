package model

// ===============================
// Stored Entities
// ===============================

// Event represents a bookable occasion as held in the store and persisted
// under the "events" key.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Location    string `json:"location"`
	TotalSeats  int    `json:"totalSeats"`
	BookedSeats int    `json:"bookedSeats"`
	ImageURL    string `json:"imageUrl"`
}

// AvailableSeats returns the seats still open for booking
func (e *Event) AvailableSeats() int {
	return e.TotalSeats - e.BookedSeats
}

// ToEventResponse converts a stored event to its API representation
func (e *Event) ToEventResponse(maxTickets int) *EventResponse {
	return &EventResponse{
		EventID:        e.ID,
		Title:          e.Title,
		Date:           e.Date,
		Time:           e.Time,
		Location:       e.Location,
		TotalSeats:     e.TotalSeats,
		BookedSeats:    e.BookedSeats,
		AvailableSeats: e.AvailableSeats(),
		MaxTickets:     maxTickets,
		ImageURL:       e.ImageURL,
	}
}

// ===============================
// Store DTOs (Internal)
// ===============================

// CreateEventRequest represents admin input for creating an event in the store
type CreateEventRequest struct {
	Title      string
	Date       string
	Time       string
	Location   string
	TotalSeats int
	ImageURL   string
}

// ===============================
// API DTOs (External)
// ===============================

// CreateEventAPIRequest represents the API request for creating an event.
// Field presence is checked by the rule engine, not by binding tags, so the
// error shape matches the booking flow.
type CreateEventAPIRequest struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	TotalSeats int    `json:"total_seats"`
	ImageURL   string `json:"image_url"`
}

// ToCreateEventRequest converts API request to store request
func (r *CreateEventAPIRequest) ToCreateEventRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:      r.Title,
		Date:       r.Date,
		Time:       r.Time,
		Location:   r.Location,
		TotalSeats: r.TotalSeats,
		ImageURL:   r.ImageURL,
	}
}

// EventResponse represents event data in API responses
type EventResponse struct {
	EventID        string `json:"event_id"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	TotalSeats     int    `json:"total_seats"`
	BookedSeats    int    `json:"booked_seats"`
	AvailableSeats int    `json:"available_seats"`
	MaxTickets     int    `json:"max_tickets"`
	ImageURL       string `json:"image_url"`
}

// EventListResponse represents the response for listing events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

// AvailabilityResponse represents the seat availability of one event
type AvailabilityResponse struct {
	EventID        string `json:"event_id"`
	AvailableSeats int    `json:"available_seats"`
	MaxTickets     int    `json:"max_tickets"`
}
