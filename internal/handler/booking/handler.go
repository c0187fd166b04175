package booking

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tassuhoiva/booking-api/internal/email"
	"github.com/tassuhoiva/booking-api/internal/handler"
	"github.com/tassuhoiva/booking-api/internal/model"
	"github.com/tassuhoiva/booking-api/internal/store"
)

type Handler struct {
	store  *store.Store
	mailer email.Service
}

func NewHandler(st *store.Store, mailer email.Service) *Handler {
	return &Handler{store: st, mailer: mailer}
}

// CreateBooking prices and submits a booking draft. The response carries the
// record as the remote store assigned it, id included; nothing is stored
// locally until then.
func (h *Handler) CreateBooking(c *gin.Context) {
	var draft model.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	booking, err := h.store.CreateBooking(c.Request.Context(), draft)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	// The mail goroutine outlives this request: gin recycles the context once
	// the response is written, and the request context is cancelled with it.
	// Detach before launching and never touch c from the goroutine.
	mailCtx := context.WithoutCancel(c.Request.Context())
	go func(ctx context.Context, b model.Booking) {
		if err := h.mailer.SendBookingReceived(ctx, &b); err != nil {
			log.Warn().Err(err).Str("booking_id", b.ID).Msg("booking email failed")
		}
	}(mailCtx, *booking)

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{"booking": booking}))
}

// ListBookings refreshes the list from the remote store and returns it,
// optionally filtered by status and a free-text search. When the refresh
// fails the previous list is kept server-side and the failure is surfaced.
func (h *Handler) ListBookings(c *gin.Context) {
	var filters model.BookingFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.store.LoadBookings(c.Request.Context()); err != nil {
		handler.RespondError(c, err)
		return
	}

	bookings := store.FilterBookings(h.store.Snapshot().Bookings, filters)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"bookings": bookings}))
}

// UpdateStatus moves a booking between pending, confirmed and cancelled. A
// 404 here means the booking vanished remotely; the caller should refresh
// the list instead of retrying.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	id := c.Param("id")
	if err := h.store.UpdateBookingStatus(c.Request.Context(), id, req.Status); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.store.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

// statusLabel renders a booking status the way the admin UI shows it.
func statusLabel(s model.BookingStatus) string {
	switch s {
	case model.BookingStatusConfirmed:
		return "Vahvistettu"
	case model.BookingStatusCancelled:
		return "Peruttu"
	default:
		return "Odottaa"
	}
}

// ExportCSV streams the filtered booking list as a CSV download.
func (h *Handler) ExportCSV(c *gin.Context) {
	var filters model.BookingFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.store.LoadBookings(c.Request.Context()); err != nil {
		handler.RespondError(c, err)
		return
	}
	bookings := store.FilterBookings(h.store.Snapshot().Bookings, filters)

	filename := fmt.Sprintf("varaukset_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"ID", "Palvelu", "Asiakas", "Sähköposti", "Puhelin", "Lemmikki", "Päivämäärä", "Aika", "Hinta", "Tila", "Luotu"})
	for _, b := range bookings {
		_ = w.Write([]string{
			b.ID,
			b.ServiceName,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.PetName,
			b.Date,
			b.Time,
			fmt.Sprintf("%g€", b.Price),
			statusLabel(b.Status),
			b.CreatedAt.Format("02.01.2006 15:04"),
		})
	}
	w.Flush()
}

// RegisterRoutes registers the public booking submission and, behind
// adminAuth, the management endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)

		bookings.GET("", adminAuth, h.ListBookings)
		bookings.GET("/export", adminAuth, h.ExportCSV)
		bookings.PATCH("/:id/status", adminAuth, h.UpdateStatus)
		bookings.DELETE("/:id", adminAuth, h.DeleteBooking)
	}
}
