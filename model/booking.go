package model

import (
	"time"
)

// ============================================================================
// STORED ENTITIES
// ============================================================================

// Booking represents a reservation of one or more seats against one event.
// It is persisted under the "bookings" key.
type Booking struct {
	ID              string    `json:"id"`
	EventID         string    `json:"eventId"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	NumberOfTickets int       `json:"numberOfTickets"`
	BookingDate     time.Time `json:"bookingDate"`
}

// ============================================================================
// STORE DATA TRANSFER OBJECTS (Internal)
// ============================================================================

// CreateBookingRequest represents the candidate booking handed to the store
type CreateBookingRequest struct {
	EventID         string
	FullName        string
	Email           string
	NumberOfTickets int
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// SubmitBookingRequest represents the API request to book tickets for an event
type SubmitBookingRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	NumberOfTickets int    `json:"number_of_tickets"`
}

// ToCreateBookingRequest converts API request to store request
func (r *SubmitBookingRequest) ToCreateBookingRequest(eventID string) CreateBookingRequest {
	return CreateBookingRequest{
		EventID:         eventID,
		FullName:        r.FullName,
		Email:           r.Email,
		NumberOfTickets: r.NumberOfTickets,
	}
}

// BookingResponse represents a confirmed booking in API responses
type BookingResponse struct {
	BookingID       string    `json:"booking_id"`
	EventID         string    `json:"event_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	NumberOfTickets int       `json:"number_of_tickets"`
	BookingDate     time.Time `json:"booking_date"`
}

// AdminBookingSummary represents a booking row in the admin booking list
type AdminBookingSummary struct {
	BookingResponse
	EventTitle string `json:"event_title"`
}

// AdminBookingsResponse represents the admin booking list
type AdminBookingsResponse struct {
	Bookings []AdminBookingSummary `json:"bookings"`
	Total    int                   `json:"total"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToBookingResponse converts a Booking entity to its API representation
func (b *Booking) ToBookingResponse() BookingResponse {
	return BookingResponse{
		BookingID:       b.ID,
		EventID:         b.EventID,
		FullName:        b.FullName,
		Email:           b.Email,
		NumberOfTickets: b.NumberOfTickets,
		BookingDate:     b.BookingDate,
	}
}

// ToAdminBookingSummary converts a Booking entity to an admin list row
func (b *Booking) ToAdminBookingSummary(eventTitle string) AdminBookingSummary {
	return AdminBookingSummary{
		BookingResponse: b.ToBookingResponse(),
		EventTitle:      eventTitle,
	}
}
