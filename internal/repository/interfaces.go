package repository

import (
	"context"
	"time"

	"github.com/tassuhoiva/booking-api/internal/model"
)

// The remote data store is reachable through two interchangeable backends, a
// relational one (Postgres/Supabase) and a document one (Firestore). Both are
// selected at composition time; everything above these interfaces is
// backend-agnostic.
type (
	// ServiceRepository reads the bookable service catalog.
	ServiceRepository interface {
		ListActive(ctx context.Context) ([]model.Service, error)
	}

	// BookingRepository handles booking persistence. Create assigns the
	// store-side id and creation timestamp on the passed record. Delete is
	// idempotent: deleting an absent id is not an error.
	BookingRepository interface {
		Create(ctx context.Context, booking *model.Booking) error
		Get(ctx context.Context, id string) (*model.Booking, error)
		List(ctx context.Context) ([]model.Booking, error)
		UpdateStatus(ctx context.Context, id string, status model.BookingStatus, updatedAt time.Time) error
		Delete(ctx context.Context, id string) error
	}
)
