// Package rules holds the booking and event validation rules. Every function
// is pure: it reads the snapshot it is given and never mutates it.
package rules

import (
	"regexp"
	"strings"
	"time"

	"github.com/arunvm123/eventbooking-demo/model"
)

// MaxTicketsPerBooking caps the ticket selector offered to users.
const MaxTicketsPerBooking = 10

// DefaultImageURL is used for events created without an image.
const DefaultImageURL = "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Snapshot is the state a booking is validated against.
type Snapshot struct {
	Events   []model.Event
	Bookings []model.Booking
}

// AvailableSeats returns totalSeats - bookedSeats for the event, or 0 when
// the event is not in the snapshot.
func (s Snapshot) AvailableSeats(eventID string) int {
	for i := range s.Events {
		if s.Events[i].ID == eventID {
			return s.Events[i].AvailableSeats()
		}
	}
	return 0
}

// HasBooked reports whether email already booked eventID, ignoring case.
func (s Snapshot) HasBooked(eventID, email string) bool {
	for _, b := range s.Bookings {
		if b.EventID == eventID && strings.EqualFold(b.Email, email) {
			return true
		}
	}
	return false
}

// CheckBooking validates a candidate booking. Checks run in a fixed order:
// required fields, email shape, ticket count, duplicate email, capacity. The
// first failure is returned.
func CheckBooking(snap Snapshot, candidate model.CreateBookingRequest) error {
	if strings.TrimSpace(candidate.FullName) == "" {
		return &ValidationError{Field: "full_name", Reason: "is required"}
	}
	email := strings.TrimSpace(candidate.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	if candidate.NumberOfTickets < 1 {
		return &ValidationError{Field: "number_of_tickets", Reason: "must be at least 1"}
	}

	if snap.HasBooked(candidate.EventID, email) {
		return &DuplicateBookingError{EventID: candidate.EventID, Email: email}
	}

	available := snap.AvailableSeats(candidate.EventID)
	if candidate.NumberOfTickets > available {
		return &CapacityExceededError{
			EventID:   candidate.EventID,
			Requested: candidate.NumberOfTickets,
			Available: available,
		}
	}
	return nil
}

// MaxSelectableTickets is the upper bound of the ticket selector:
// min(10, available), never negative.
func MaxSelectableTickets(available int) int {
	if available < 0 {
		return 0
	}
	if available > MaxTicketsPerBooking {
		return MaxTicketsPerBooking
	}
	return available
}

// CheckEvent validates admin input for a new event.
func CheckEvent(in model.CreateEventRequest) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(in.Date) == "" {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(in.Date)); err != nil {
		return &ValidationError{Field: "date", Reason: "must be a calendar date (YYYY-MM-DD)"}
	}
	if strings.TrimSpace(in.Time) == "" {
		return &ValidationError{Field: "time", Reason: "is required"}
	}
	if strings.TrimSpace(in.Location) == "" {
		return &ValidationError{Field: "location", Reason: "is required"}
	}
	if in.TotalSeats <= 0 {
		return &ValidationError{Field: "total_seats", Reason: "must be greater than 0"}
	}
	return nil
}
