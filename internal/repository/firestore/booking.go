package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tassuhoiva/booking-api/internal/model"
	apperrors "github.com/tassuhoiva/booking-api/pkg/errors"
)

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.CreatedAt = time.Now()
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	if booking.Date == "" {
		booking.Date = booking.StartDate
	}

	ref, _, err := r.client.Collection(bookingsCollection).Add(ctx, bookingToDoc(booking))
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = ref.ID
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id string) (*model.Booking, error) {
	doc, err := r.client.Collection(bookingsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperrors.NotFound("booking", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	booking := bookingFromDoc(doc.Ref.ID, doc.Data())
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	iter := r.client.Collection(bookingsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var bookings []model.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
		bookings = append(bookings, bookingFromDoc(doc.Ref.ID, doc.Data()))
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, bookingStatus model.BookingStatus, updatedAt time.Time) error {
	_, err := r.client.Collection(bookingsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(bookingStatus)},
		{Path: "updatedAt", Value: updatedAt},
	})
	if status.Code(err) == codes.NotFound {
		return apperrors.NotFound("booking", err)
	}
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	// Firestore deletes are idempotent: removing an absent document succeeds.
	if _, err := r.client.Collection(bookingsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func bookingToDoc(b *model.Booking) map[string]interface{} {
	doc := map[string]interface{}{
		"serviceId":     b.ServiceID,
		"serviceName":   b.ServiceName,
		"price":         b.Price,
		"customerName":  b.CustomerName,
		"customerEmail": b.CustomerEmail,
		"customerPhone": b.CustomerPhone,
		"petName":       b.PetName,
		"petType":       b.PetType,
		"date":          b.Date,
		"startDate":     b.StartDate,
		"endDate":       b.EndDate,
		"time":          b.Time,
		"message":       b.Message,
		"status":        string(b.Status),
		"createdAt":     b.CreatedAt,
	}
	if b.UpdatedAt != nil {
		doc["updatedAt"] = *b.UpdatedAt
	}
	return doc
}

func bookingFromDoc(id string, data map[string]interface{}) model.Booking {
	booking := model.Booking{
		ID:            id,
		ServiceID:     asString(data["serviceId"]),
		ServiceName:   asString(data["serviceName"]),
		Price:         asFloat(data["price"]),
		CustomerName:  asString(data["customerName"]),
		CustomerEmail: asString(data["customerEmail"]),
		CustomerPhone: asString(data["customerPhone"]),
		PetName:       asString(data["petName"]),
		PetType:       asString(data["petType"]),
		Date:          asString(data["date"]),
		StartDate:     asString(data["startDate"]),
		EndDate:       asString(data["endDate"]),
		Time:          asString(data["time"]),
		Message:       asString(data["message"]),
		Status:        model.BookingStatus(asString(data["status"])),
		CreatedAt:     asTime(data["createdAt"]),
	}
	if t := asTime(data["updatedAt"]); !t.IsZero() {
		booking.UpdatedAt = &t
	}
	return booking
}
