package model

import "time"

// ===============================
// Auth DTOs
// ===============================

// LoginRequest represents the admin login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful admin login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// SessionResponse reports the admin flag of the caller's session
type SessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// ===============================
// Journal Messages
// ===============================

// JournalEntry is the message mirrored to the change journal after a
// committed mutation
type JournalEntry struct {
	Type      string    `json:"type"`
	Event     *Event    `json:"event,omitempty"`
	Booking   *Booking  `json:"booking,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	JournalEventCreated   = "event_created"
	JournalBookingCreated = "booking_created"
)

// ===============================
// Shared API DTOs
// ===============================

// ErrorResponse represents error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Storage   string    `json:"storage"`
	Timestamp time.Time `json:"timestamp"`
}
