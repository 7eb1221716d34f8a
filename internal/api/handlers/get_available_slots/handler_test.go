package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	getSlots "github.com/nangenlabs/NGL-SiteService/internal/usecase/get_available_slots"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetBySlotDate(context.Context, time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeSettingsRepo struct {
	accepting bool
}

func (f *fakeSettingsRepo) Get(context.Context) (*domain.SiteSettings, error) {
	return &domain.SiteSettings{AcceptingBookings: f.accepting}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// newHandler собирает handler поверх реального use case, чтобы путь
// от query-строки до сетки слотов проверялся целиком.
func newHandler(t *testing.T, repo *fakeBookingRepo, accepting bool, now time.Time) (*Handler, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := getSlots.NewUseCase(
		repo,
		&fakeSettingsRepo{accepting: accepting},
		domain.DefaultWeeklySchedule(),
		loc,
		nopLogger{},
	).WithTimeProvider(fixedTime{now: now})

	return NewHandler(uc, loc, nopLogger{}), loc
}

func doRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

// Дата из query-строки должна читаться в бизнес-таймзоне: полночь UTC
// для America/New_York - это ещё предыдущий день, и понедельник иначе
// превращается в воскресенье с пустой сеткой.
func TestHandle_DateAnchoredInBusinessTimezone(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)

	h, _ := newHandler(t, &fakeBookingRepo{}, true, now)

	rec := doRequest(t, h, "/api/v1/slots?date=2026-03-02")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2026-03-02", resp.Date)
	require.Len(t, resp.Slots, 8, "Monday grid")
	assert.Equal(t, "14:00", resp.Slots[0].StartTime)
	assert.Equal(t, "15:45", resp.Slots[7].StartTime)
}

func TestHandle_MarksBookedSlot(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			Date:      time.Date(2026, 3, 2, 14, 15, 0, 0, loc).UTC(),
			SlotDate:  monday,
			StartTime: "14:15",
		},
	}}

	h, _ := newHandler(t, repo, true, now)

	rec := doRequest(t, h, "/api/v1/slots?date=2026-03-02")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	byStart := make(map[string]SlotResponse)
	for _, s := range resp.Slots {
		byStart[s.StartTime] = s
	}
	assert.True(t, byStart["14:15"].Booked)
	assert.False(t, byStart["14:00"].Booked)
}

func TestHandle_BadRequests(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	h, _ := newHandler(t, &fakeBookingRepo{}, true, now)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing date", target: "/api/v1/slots"},
		{name: "malformed date", target: "/api/v1/slots?date=03-02-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_BookingsClosed(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	h, _ := newHandler(t, &fakeBookingRepo{}, false, now)

	rec := doRequest(t, h, "/api/v1/slots?date=2026-03-02")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
