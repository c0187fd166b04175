package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the three lifecycle states. There is no
// terminal state: a cancelled booking can be revived by the admin.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a customer's reservation of a service over a date range. Price is
// the computed total at creation time, not the per-day rate, and is never
// recomputed on edit. ServiceName is a denormalized copy taken when the
// booking was made, so a booking survives its service.
type Booking struct {
	ID            string        `db:"id" json:"id"`
	ServiceID     string        `db:"service_id" json:"serviceId"`
	ServiceName   string        `db:"service_name" json:"serviceName"`
	Price         float64       `db:"price" json:"price"`
	CustomerName  string        `db:"customer_name" json:"customerName"`
	CustomerEmail string        `db:"customer_email" json:"customerEmail"`
	CustomerPhone string        `db:"customer_phone" json:"customerPhone"`
	PetName       string        `db:"pet_name" json:"petName"`
	PetType       string        `db:"pet_type" json:"petType"`
	Date          string        `db:"date" json:"date"` // legacy single-day field, mirrors StartDate
	StartDate     string        `db:"start_date" json:"startDate,omitempty"`
	EndDate       string        `db:"end_date" json:"endDate,omitempty"`
	Time          string        `db:"time" json:"time"`
	Message       string        `db:"message" json:"message,omitempty"`
	Status        BookingStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time    `db:"updated_at" json:"updatedAt,omitempty"`
}

// BookingDraft is what the booking form submits. Validation is
// required-field presence only, enforced at the binding layer.
type BookingDraft struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	PetName       string `json:"petName" binding:"required"`
	PetType       string `json:"petType" binding:"required"`
	StartDate     string `json:"startDate" binding:"required"`
	EndDate       string `json:"endDate" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Message       string `json:"message"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// BookingFilters narrows the admin listing. Search matches customer name,
// email and pet name, case-insensitively.
type BookingFilters struct {
	Status BookingStatus `form:"status"`
	Search string        `form:"search"`
}

// BookingStats backs the admin dashboard counters.
type BookingStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Confirmed int     `json:"confirmed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"` // sum of confirmed booking totals
}
