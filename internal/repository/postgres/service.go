package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tassuhoiva/booking-api/internal/catalog"
	"github.com/tassuhoiva/booking-api/internal/model"
)

// serviceRow mirrors the services table. Features is stored as text (JSON or
// comma-separated in legacy rows) and decoded on read.
type serviceRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Duration    int       `db:"duration"`
	Category    string    `db:"category"`
	Features    string    `db:"features"`
	Icon        string    `db:"icon"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]model.Service, error) {
	query := `
		SELECT id, name, description, price, duration, category,
			   features, icon, is_active, created_at, updated_at
		FROM services
		WHERE is_active = TRUE
		ORDER BY id ASC
	`
	var rows []serviceRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]model.Service, len(rows))
	for i, row := range rows {
		services[i] = model.Service{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			Duration:    row.Duration,
			Category:    model.ServiceCategory(row.Category),
			Features:    catalog.ParseFeatures(row.Features),
			Icon:        row.Icon,
			IsActive:    row.IsActive,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return services, nil
}
