package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	bookingRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/booking"
	"github.com/nangenlabs/NGL-SiteService/internal/service/bookings/models"
	"github.com/nangenlabs/NGL-SiteService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.SlotDate != nil && !b.SlotDate.Equal(*filter.SlotDate) {
			continue
		}
		if filter.From != nil && b.SlotDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.SlotDate.After(*filter.To) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T, repo *fakeBookingRepo, now time.Time) *Service {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return NewService(repo, loc, nopLogger{}).WithTimeProvider(fixedTime{now: now})
}

func sampleBooking(id int64, slotDate time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Date:      slotDate.Add(14 * time.Hour).UTC(),
		SlotDate:  slotDate,
		StartTime: "14:00",
		ClientInfo: domain.ClientInfo{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Message: ptr.Ptr("see you then"),
		},
	}
}

func TestGetByID(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{sampleBooking(1, monday)}}
	svc := newService(t, repo, monday)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", resp.SlotDate)
	assert.Equal(t, "2:00 PM", resp.TimeSlot)
	assert.Equal(t, "jane@example.com", resp.Email)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_InvalidPeriod(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	svc := newService(t, &fakeBookingRepo{}, now)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListBookedSlots_SkipsPastAndStripsPII(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	lastMonday := time.Date(2026, 2, 23, 0, 0, 0, 0, loc)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		sampleBooking(1, lastMonday),
		sampleBooking(2, monday),
	}}

	// "Сегодня" - суббота перед понедельником
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, loc)
	svc := newService(t, repo, now)

	resp, err := svc.ListBookedSlots(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1, "past bookings are not exposed")
	assert.Equal(t, "2026-03-02", resp.Slots[0].SlotDate)
	assert.Equal(t, "2:00 PM", resp.Slots[0].TimeSlot)
}

func TestDelete(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{sampleBooking(1, monday)}}
	svc := newService(t, repo, monday)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.bookings)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBookingNotFound)
}
