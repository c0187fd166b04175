// Package firestore implements the booking and service repositories against
// Cloud Firestore, the document-flavored remote store. Field names follow the
// document convention (camelCase), matching what the original data importer
// wrote.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/tassuhoiva/booking-api/internal/config"
	"github.com/tassuhoiva/booking-api/internal/repository"
)

const (
	bookingsCollection = "bookings"
	servicesCollection = "services"
)

type serviceRepository struct {
	client *firestore.Client
}

type bookingRepository struct {
	client *firestore.Client
}

// NewClient initializes the Firebase app and returns its Firestore client.
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}
	return client, nil
}

func NewServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &serviceRepository{client: client}
}

func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}
