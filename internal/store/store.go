// Package store holds the in-memory application state: the service catalog,
// the booking list, the customer's currently selected service and the
// loading/error flags. It is the single writer of that state; handlers only
// dispatch operations and read snapshots, so there are no torn reads to worry
// about beyond the mutex here.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tassuhoiva/booking-api/internal/catalog"
	"github.com/tassuhoiva/booking-api/internal/model"
	"github.com/tassuhoiva/booking-api/internal/pricing"
	"github.com/tassuhoiva/booking-api/internal/repository"
)

// State is the observable store state. Error is empty when the last
// booking-side operation succeeded; catalog operations never set it.
type State struct {
	Services        []model.Service
	SelectedService *model.Service
	Bookings        []model.Booking
	Loading         bool
	Error           string
}

type Store struct {
	mu       sync.RWMutex
	catalog  *catalog.Service
	bookings repository.BookingRepository
	state    State
}

func New(catalogSvc *catalog.Service, bookings repository.BookingRepository) *Store {
	return &Store{
		catalog:  catalogSvc,
		bookings: bookings,
		state: State{
			Services: catalog.DefaultCatalog(),
			Bookings: []model.Booking{},
		},
	}
}

// Snapshot returns a copy of the current state. The slices are copied so a
// caller can render them while operations keep mutating the store.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Services = append([]model.Service(nil), s.state.Services...)
	snap.Bookings = append([]model.Booking(nil), s.state.Bookings...)
	if s.state.SelectedService != nil {
		selected := *s.state.SelectedService
		snap.SelectedService = &selected
	}
	return snap
}

// LoadServices refreshes the catalog slice. It cannot fail: the catalog
// service degrades to the default catalog on any fetch problem, and the
// store's error state is left untouched either way.
func (s *Store) LoadServices(ctx context.Context) {
	s.begin()

	services, _ := s.catalog.List(ctx)

	s.mu.Lock()
	s.state.Services = services
	s.state.Loading = false
	s.mu.Unlock()
}

// SelectService records the service the customer is configuring a booking
// for. No validation: the selection may reference an inactive or unknown
// service.
func (s *Store) SelectService(svc model.Service) {
	s.mu.Lock()
	s.state.SelectedService = &svc
	s.mu.Unlock()
}

func (s *Store) ClearSelectedService() {
	s.mu.Lock()
	s.state.SelectedService = nil
	s.mu.Unlock()
}

// LoadBookings replaces the booking list from the remote store, newest first.
// On failure the previous list is kept (stale but present beats empty) and
// the error state is set.
func (s *Store) LoadBookings(ctx context.Context) error {
	s.begin()

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	s.mu.Lock()
	s.state.Bookings = bookings
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()
	return nil
}

// CreateBooking prices the draft and submits it. Creation is pessimistic: the
// local list only gains the record once the remote store has assigned its id,
// and a failed submission leaves no placeholder behind.
func (s *Store) CreateBooking(ctx context.Context, draft model.BookingDraft) (*model.Booking, error) {
	svc := s.findService(draft.ServiceID)

	booking := model.Booking{
		ServiceID:     draft.ServiceID,
		Price:         pricing.ComputeTotal(svc, draft.StartDate, draft.EndDate),
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
		CustomerPhone: draft.CustomerPhone,
		PetName:       draft.PetName,
		PetType:       draft.PetType,
		Date:          draft.StartDate,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		Time:          draft.Time,
		Message:       draft.Message,
		Status:        model.BookingStatusPending,
	}
	if svc != nil {
		booking.ServiceName = svc.Name
	}

	s.begin()

	if err := s.bookings.Create(ctx, &booking); err != nil {
		s.fail(err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.mu.Lock()
	s.state.Bookings = append(s.state.Bookings, booking)
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()
	return &booking, nil
}

// DeleteBooking removes the booking remotely and, on success, locally.
// Deleting an id that is already gone succeeds and leaves the list unchanged.
func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	s.begin()

	if err := s.bookings.Delete(ctx, id); err != nil {
		s.fail(err)
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.mu.Lock()
	kept := s.state.Bookings[:0]
	for _, b := range s.state.Bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.state.Bookings = kept
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()
	return nil
}

// UpdateBookingStatus moves a booking between pending, confirmed and
// cancelled. The record is re-read first: a booking another admin session
// deleted in the meantime fails with a not-found error distinguishable from
// transient failures, so the caller can refresh the list instead of retrying
// a write that cannot succeed. On success only the status and updatedAt of
// the one matching entry change.
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) error {
	s.begin()

	if _, err := s.bookings.Get(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	now := time.Now()
	if err := s.bookings.UpdateStatus(ctx, id, status, now); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	for i := range s.state.Bookings {
		if s.state.Bookings[i].ID == id {
			s.state.Bookings[i].Status = status
			s.state.Bookings[i].UpdatedAt = &now
			break
		}
	}
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()
	return nil
}

// Stats summarizes the current booking list for the admin dashboard. Revenue
// counts confirmed bookings only.
func (s *Store) Stats() model.BookingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.BookingStats{Total: len(s.state.Bookings)}
	for _, b := range s.state.Bookings {
		switch b.Status {
		case model.BookingStatusPending:
			stats.Pending++
		case model.BookingStatusConfirmed:
			stats.Confirmed++
			stats.Revenue += b.Price
		case model.BookingStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

func (s *Store) findService(id string) *model.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Services {
		if s.state.Services[i].ID == id {
			svc := s.state.Services[i]
			return &svc
		}
	}
	if s.state.SelectedService != nil && s.state.SelectedService.ID == id {
		svc := *s.state.SelectedService
		return &svc
	}
	return nil
}

func (s *Store) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Error = err.Error()
	s.mu.Unlock()
}

// FilterBookings narrows a booking list by status and a case-insensitive
// search over customer name, email and pet name.
func FilterBookings(bookings []model.Booking, filters model.BookingFilters) []model.Booking {
	out := make([]model.Booking, 0, len(bookings))
	search := strings.ToLower(filters.Search)
	for _, b := range bookings {
		if filters.Status != "" && b.Status != filters.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), search) &&
			!strings.Contains(strings.ToLower(b.CustomerEmail), search) &&
			!strings.Contains(strings.ToLower(b.PetName), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}
