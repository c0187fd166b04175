package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassuhoiva/booking-api/internal/catalog"
	"github.com/tassuhoiva/booking-api/internal/model"
	"github.com/tassuhoiva/booking-api/internal/store"
	apperrors "github.com/tassuhoiva/booking-api/pkg/errors"
)

type fakeServiceRepo struct{}

func (f *fakeServiceRepo) ListActive(context.Context) ([]model.Service, error) {
	return catalog.DefaultCatalog(), nil
}

type fakeBookingRepo struct {
	bookings []model.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	booking.ID = fmt.Sprintf("remote-%d", len(f.bookings)+1)
	booking.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) Get(_ context.Context, id string) (*model.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, apperrors.NotFound("booking", nil)
}

func (f *fakeBookingRepo) List(context.Context) ([]model.Booking, error) {
	return append([]model.Booking(nil), f.bookings...), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status model.BookingStatus, updatedAt time.Time) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			f.bookings[i].UpdatedAt = &updatedAt
			return nil
		}
	}
	return apperrors.NotFound("booking", nil)
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

type mailDelivery struct {
	to     string
	ctxErr error
}

type fakeMailer struct {
	block chan struct{} // when non-nil, sending waits until released
	sent  chan mailDelivery
}

func (f *fakeMailer) SendBookingReceived(ctx context.Context, booking *model.Booking) error {
	if f.block != nil {
		<-f.block
	}
	f.sent <- mailDelivery{to: booking.CustomerEmail, ctxErr: ctx.Err()}
	return nil
}

func passThroughAuth(c *gin.Context) { c.Next() }

func setupRouter(t *testing.T, repo *fakeBookingRepo) (*gin.Engine, *store.Store, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(catalog.NewService(&fakeServiceRepo{}, time.Minute), repo)
	st.LoadServices(context.Background())

	mailer := &fakeMailer{sent: make(chan mailDelivery, 1)}
	r := gin.New()
	NewHandler(st, mailer).RegisterRoutes(r.Group("/api/v1"), passThroughAuth)
	return r, st, mailer
}

func TestCreateBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	r, _, mailer := setupRouter(t, repo)

	body := `{
		"serviceId": "3",
		"customerName": "Maija Meikäläinen",
		"customerEmail": "maija@example.com",
		"customerPhone": "+358401234567",
		"petName": "Musti",
		"petType": "koira",
		"startDate": "2025-06-01",
		"endDate": "2025-06-02",
		"time": "18:00"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Booking model.Booking `json:"booking"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "remote-1", resp.Data.Booking.ID)
	assert.Equal(t, model.BookingStatusPending, resp.Data.Booking.Status)
	assert.Equal(t, 100.0, resp.Data.Booking.Price)

	select {
	case delivery := <-mailer.sent:
		assert.Equal(t, "maija@example.com", delivery.to)
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestCreateBookingEmailOutlivesRequest(t *testing.T) {
	repo := &fakeBookingRepo{}
	r, _, mailer := setupRouter(t, repo)
	mailer.block = make(chan struct{})

	body := `{
		"serviceId": "1",
		"customerName": "Pekka Virtanen",
		"customerEmail": "pekka@example.com",
		"customerPhone": "+358409876543",
		"petName": "Mirri",
		"petType": "kissa",
		"startDate": "2025-06-01",
		"endDate": "2025-06-01",
		"time": "10:00"
	}`
	ctx, cancel := context.WithCancel(context.Background())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The server cancels the request context once the response is written;
	// the confirmation email must still go out after that.
	cancel()
	close(mailer.block)

	select {
	case delivery := <-mailer.sent:
		assert.NoError(t, delivery.ctxErr, "mail context must survive the request")
		assert.Equal(t, "pekka@example.com", delivery.to)
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	repo := &fakeBookingRepo{}
	r, _, _ := setupRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"serviceId": "1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.bookings, "invalid drafts never reach the remote store")
}

func TestListBookingsFiltersByStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []model.Booking{
		{ID: "a", CustomerName: "Maija", Status: model.BookingStatusPending},
		{ID: "b", CustomerName: "Pekka", Status: model.BookingStatusConfirmed},
	}}
	r, _, _ := setupRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=confirmed", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Bookings []model.Booking `json:"bookings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Bookings, 1)
	assert.Equal(t, "b", resp.Data.Bookings[0].ID)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []model.Booking{
		{ID: "a", Status: model.BookingStatusPending},
	}}
	r, st, _ := setupRouter(t, repo)
	require.NoError(t, st.LoadBookings(context.Background()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/a/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.BookingStatusConfirmed, st.Snapshot().Bookings[0].Status)
}

func TestUpdateStatusVanishedBookingIs404(t *testing.T) {
	repo := &fakeBookingRepo{}
	r, _, _ := setupRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/gone/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []model.Booking{{ID: "a"}}}
	r, _, _ := setupRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/a/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []model.Booking{{ID: "a"}, {ID: "b"}}}
	r, st, _ := setupRouter(t, repo)
	require.NoError(t, st.LoadBookings(context.Background()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/a", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, st.Snapshot().Bookings, 1)
	assert.Equal(t, "b", st.Snapshot().Bookings[0].ID)
}

func TestExportCSV(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []model.Booking{{
		ID:            "a",
		ServiceName:   "Kotikäynnit",
		Price:         35,
		CustomerName:  "Maija Meikäläinen",
		CustomerEmail: "maija@example.com",
		CustomerPhone: "+358401234567",
		PetName:       "Musti",
		Date:          "2025-06-05",
		Time:          "10:00",
		Status:        model.BookingStatusConfirmed,
		CreatedAt:     created,
	}}}
	r, _, _ := setupRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/export", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "varaukset_")

	body := w.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Palvelu,Asiakas,Sähköposti,Puhelin,Lemmikki,Päivämäärä,Aika,Hinta,Tila,Luotu", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "35€")
	assert.Contains(t, lines[1], "Vahvistettu")
	assert.Contains(t, lines[1], "01.06.2025 09:30")
}
