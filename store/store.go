// Package store holds the authoritative in-memory copy of events and bookings
// and mirrors every mutation to a repository.Repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/arunvm123/eventbooking-demo/clock"
	"github.com/arunvm123/eventbooking-demo/journal"
	"github.com/arunvm123/eventbooking-demo/model"
	"github.com/arunvm123/eventbooking-demo/repository"
	"github.com/arunvm123/eventbooking-demo/rules"
	"github.com/google/uuid"
)

type options struct {
	clock        clock.Clock
	journal      journal.Publisher
	seedDefaults bool
}

type Option func(*options)

// WithClock sets the clock used to stamp new bookings.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithJournal mirrors committed mutations to p.
func WithJournal(p journal.Publisher) Option {
	return func(o *options) { o.journal = p }
}

// WithSeedDefaults writes DefaultEvents when no events are stored yet.
func WithSeedDefaults(seed bool) Option {
	return func(o *options) { o.seedDefaults = seed }
}

// Store serialises all mutations behind one lock. A mutation only reaches
// memory after the repository accepted every write it needs.
type Store struct {
	mu       sync.RWMutex
	events   []model.Event
	bookings []model.Booking

	repo    repository.Repository
	clock   clock.Clock
	journal journal.Publisher
}

// New loads both collections from repo once.
func New(ctx context.Context, repo repository.Repository, opts ...Option) (*Store, error) {
	o := options{
		clock:   clock.NewSystem(),
		journal: journal.Noop{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	events, err := repo.LoadEvents(ctx)
	switch {
	case errors.Is(err, repository.ErrNotStored):
		events = []model.Event{}
		if o.seedDefaults {
			events = DefaultEvents()
			if err := repo.SaveEvents(ctx, events); err != nil {
				return nil, fmt.Errorf("failed to seed default events: %w", err)
			}
			log.Printf("Seeded %d default events", len(events))
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	bookings, err := repo.LoadBookings(ctx)
	switch {
	case errors.Is(err, repository.ErrNotStored):
		bookings = []model.Booking{}
	case err != nil:
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	log.Printf("Store loaded with %d events and %d bookings", len(events), len(bookings))

	return &Store{
		events:   events,
		bookings: bookings,
		repo:     repo,
		clock:    o.clock,
		journal:  o.journal,
	}, nil
}

// ListEvents returns a copy of all events in insertion order.
func (s *Store) ListEvents() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event(nil), s.events...)
}

// ListBookings returns a copy of all bookings in insertion order.
func (s *Store) ListBookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Booking(nil), s.bookings...)
}

func (s *Store) Event(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.events[i], true
	}
	return model.Event{}, false
}

// AvailableSeats returns 0 for an unknown event.
func (s *Store) AvailableSeats(eventID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(eventID); i >= 0 {
		return s.events[i].AvailableSeats()
	}
	return 0
}

// Snapshot returns copies of both collections for rule evaluation.
func (s *Store) Snapshot() rules.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rules.Snapshot{
		Events:   append([]model.Event(nil), s.events...),
		Bookings: append([]model.Booking(nil), s.bookings...),
	}
}

// AddEvent appends event as given and persists the events collection.
func (s *Store) AddEvent(ctx context.Context, event model.Event) error {
	s.mu.Lock()
	err := s.addEventLocked(ctx, event)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.journal.Publish(ctx, model.JournalEntry{
		Type:      model.JournalEventCreated,
		Event:     &event,
		Timestamp: s.clock.Now(),
	})
	return nil
}

// AddBooking appends booking and adds its tickets to the matching event.
// It does not validate; callers that need the booking rules use PlaceBooking.
func (s *Store) AddBooking(ctx context.Context, booking model.Booking) error {
	s.mu.Lock()
	err := s.addBookingLocked(ctx, booking)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publishBooking(ctx, booking)
	return nil
}

// PlaceBooking validates candidate against the current state and records it
// in one step, so two concurrent requests cannot both claim the last seats.
func (s *Store) PlaceBooking(ctx context.Context, candidate model.CreateBookingRequest) (model.Booking, error) {
	s.mu.Lock()
	snap := rules.Snapshot{Events: s.events, Bookings: s.bookings}
	if err := rules.CheckBooking(snap, candidate); err != nil {
		s.mu.Unlock()
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		EventID:         candidate.EventID,
		FullName:        strings.TrimSpace(candidate.FullName),
		Email:           strings.TrimSpace(candidate.Email),
		NumberOfTickets: candidate.NumberOfTickets,
		BookingDate:     s.clock.Now(),
	}
	err := s.addBookingLocked(ctx, booking)
	s.mu.Unlock()
	if err != nil {
		return model.Booking{}, err
	}

	s.publishBooking(ctx, booking)
	return booking, nil
}

// CreateEvent validates admin input and adds a new event with a fresh id,
// no booked seats and the default image when none is given.
func (s *Store) CreateEvent(ctx context.Context, in model.CreateEventRequest) (model.Event, error) {
	if err := rules.CheckEvent(in); err != nil {
		return model.Event{}, err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = rules.DefaultImageURL
	}

	event := model.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Location:    strings.TrimSpace(in.Location),
		TotalSeats:  in.TotalSeats,
		BookedSeats: 0,
		ImageURL:    imageURL,
	}
	if err := s.AddEvent(ctx, event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Close releases the journal and the repository. The store must not be used
// afterwards.
func (s *Store) Close() error {
	return errors.Join(s.journal.Close(), s.repo.Close())
}

func (s *Store) addEventLocked(ctx context.Context, event model.Event) error {
	events := make([]model.Event, 0, len(s.events)+1)
	events = append(events, s.events...)
	events = append(events, event)

	if err := s.repo.SaveEvents(ctx, events); err != nil {
		return fmt.Errorf("failed to persist events: %w", err)
	}
	s.events = events
	return nil
}

func (s *Store) addBookingLocked(ctx context.Context, booking model.Booking) error {
	bookings := make([]model.Booking, 0, len(s.bookings)+1)
	bookings = append(bookings, s.bookings...)
	bookings = append(bookings, booking)

	events := append([]model.Event(nil), s.events...)
	if i := s.indexOf(booking.EventID); i >= 0 {
		events[i].BookedSeats += booking.NumberOfTickets
	}

	if err := s.repo.SaveBookings(ctx, bookings); err != nil {
		return fmt.Errorf("failed to persist bookings: %w", err)
	}
	if err := s.repo.SaveEvents(ctx, events); err != nil {
		// Put the stored bookings back in line with memory.
		if rerr := s.repo.SaveBookings(ctx, s.bookings); rerr != nil {
			log.Printf("Failed to restore bookings after events write failed: %v", rerr)
		}
		return fmt.Errorf("failed to persist events: %w", err)
	}

	s.bookings = bookings
	s.events = events
	return nil
}

func (s *Store) publishBooking(ctx context.Context, booking model.Booking) {
	s.journal.Publish(ctx, model.JournalEntry{
		Type:      model.JournalBookingCreated,
		Booking:   &booking,
		Timestamp: s.clock.Now(),
	})
}

func (s *Store) indexOf(eventID string) int {
	for i := range s.events {
		if s.events[i].ID == eventID {
			return i
		}
	}
	return -1
}
