package model

import "time"

// ServiceCategory classifies a bookable offering.
type ServiceCategory string

const (
	CategoryHomeVisit ServiceCategory = "home_visit"
	CategoryClinic    ServiceCategory = "clinic"
	CategoryOvernight ServiceCategory = "overnight"
	CategoryDaycare   ServiceCategory = "daycare"
	CategoryWalking   ServiceCategory = "walking"
	CategoryTransport ServiceCategory = "transport"
)

// Service is a bookable pet-care offering with a per-day price in EUR.
type Service struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       float64         `db:"price" json:"price"`
	Duration    int             `db:"duration" json:"duration"` // minutes, informational
	Category    ServiceCategory `db:"category" json:"category"`
	Features    []string        `db:"-" json:"features"`
	Icon        string          `db:"icon" json:"icon"`
	IsActive    bool            `db:"is_active" json:"isActive"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}
