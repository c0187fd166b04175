package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tassuhoiva/booking-api/internal/model"
	apperrors "github.com/tassuhoiva/booking-api/pkg/errors"
)

const bookingColumns = `
	id, service_id, service_name, price,
	customer_name, customer_email, customer_phone,
	pet_name, pet_type, date, start_date, end_date,
	time, message, status, created_at, updated_at
`

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, service_id, service_name, price,
			customer_name, customer_email, customer_phone,
			pet_name, pet_type, date, start_date, end_date,
			time, message, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	if booking.Date == "" {
		booking.Date = booking.StartDate
	}

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.ServiceID,
		booking.ServiceName,
		booking.Price,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.PetName,
		booking.PetType,
		booking.Date,
		booking.StartDate,
		booking.EndDate,
		booking.Time,
		booking.Message,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("booking", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	var bookings []model.Booking
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus, updatedAt time.Time) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("booking", nil)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`

	// Zero rows affected is fine: deleting an already-deleted booking is a no-op.
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
