package firestore

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/iterator"

	"github.com/tassuhoiva/booking-api/internal/catalog"
	"github.com/tassuhoiva/booking-api/internal/model"
)

func (r *serviceRepository) ListActive(ctx context.Context) ([]model.Service, error) {
	iter := r.client.Collection(servicesCollection).
		Where("isActive", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var services []model.Service
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list services: %w", err)
		}

		data := doc.Data()
		services = append(services, model.Service{
			ID:          doc.Ref.ID,
			Name:        asString(data["name"]),
			Description: asString(data["description"]),
			Price:       asFloat(data["price"]),
			Duration:    int(asFloat(data["duration"])),
			Category:    model.ServiceCategory(asString(data["category"])),
			Features:    catalog.ParseFeatures(data["features"]),
			Icon:        asString(data["icon"]),
			IsActive:    true,
			CreatedAt:   asTime(data["createdAt"]),
			UpdatedAt:   asTime(data["updatedAt"]),
		})
	}
	return services, nil
}

// Document field coercion. The collections were written by more than one
// importer over time, so numbers may be int64 or float64 and timestamps may
// be Firestore timestamps or ISO-8601 strings.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
