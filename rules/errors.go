package rules

import (
	"errors"
	"fmt"
)

// Sentinels let callers classify a rejection with errors.Is without caring
// about the concrete error value.
var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateBookingError reports that the email already holds a booking for
// the event.
type DuplicateBookingError struct {
	EventID string
	Email   string
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("email %s has already been used to book event %s", e.Email, e.EventID)
}

func (e *DuplicateBookingError) Is(target error) bool {
	return target == ErrDuplicateBooking
}

// CapacityExceededError reports a request for more tickets than remain.
type CapacityExceededError struct {
	EventID   string
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("only %d seats available for event %s, requested %d", e.Available, e.EventID, e.Requested)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
