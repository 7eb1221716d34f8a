package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetBySlotDate(context.Context, time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
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

func newUseCase(t *testing.T, repo *fakeBookingRepo, accepting bool, now time.Time) (*UseCase, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := NewUseCase(
		repo,
		&fakeSettingsRepo{accepting: accepting},
		domain.DefaultWeeklySchedule(),
		loc,
		nopLogger{},
	).WithTimeProvider(fixedTime{now: now})

	return uc, loc
}

func TestExecute_MarksBookedSlots(t *testing.T) {
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

	uc, _ := newUseCase(t, repo, true, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)

	byStart := make(map[types.TimeString]Slot)
	for _, s := range resp.Slots {
		byStart[s.StartTime] = s
	}

	assert.True(t, byStart["14:15"].Booked, "booked slot stays in the list, flagged")
	assert.False(t, byStart["14:00"].Booked)
	assert.Equal(t, "2:15 PM", byStart["14:15"].TimeSlot)
	assert.Equal(t, domain.SlotDurationMinutes, byStart["14:15"].DurationMinutes)
}

func TestExecute_LeadTimeFlags(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	// В 13:30 слоты 14:00 и 14:15 уже за границей lead time
	now := time.Date(2026, 3, 2, 13, 30, 0, 0, loc)

	uc, _ := newUseCase(t, &fakeBookingRepo{}, true, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	assert.True(t, resp.Slots[0].Disabled)  // 14:00
	assert.True(t, resp.Slots[1].Disabled)  // 14:15
	assert.False(t, resp.Slots[2].Disabled) // 14:30
}

func TestExecute_NonBusinessDay(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)

	uc, _ := newUseCase(t, &fakeBookingRepo{}, true, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookingsClosed(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	uc, _ := newUseCase(t, &fakeBookingRepo{}, false, now)
	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrBookingsClosed)
}

func TestExecute_MissingDate(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)

	uc, _ := newUseCase(t, &fakeBookingRepo{}, true, now)
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
