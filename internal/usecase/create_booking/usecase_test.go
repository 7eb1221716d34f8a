package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	bookingRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/booking"
	"github.com/nangenlabs/NGL-SiteService/internal/integrations/mailer"
	"github.com/nangenlabs/NGL-SiteService/pkg/localdate"
)

// Фейки

// fakeBookingRepo хранит бронирования в памяти и воспроизводит поведение
// уникального индекса (slot_date, start_time)
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.SlotDate.Equal(b.SlotDate) && existing.StartTime == b.StartTime {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	f.nextID++
	stored := *b
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.bookings = append(f.bookings, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) GetBySlotDate(_ context.Context, slotDate time.Time) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.SlotDate.Equal(slotDate) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeSettingsRepo struct {
	accepting bool
	err       error
}

func (f *fakeSettingsRepo) Get(context.Context) (*domain.SiteSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SiteSettings{AcceptingBookings: f.accepting}, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*mailer.BookingEmailData
	fail bool
}

func (f *fakeMailer) SendBookingConfirmation(data *mailer.BookingEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return mailer.ErrSendFailed
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Сборка

type fixture struct {
	uc       *UseCase
	repo     *fakeBookingRepo
	settings *fakeSettingsRepo
	mail     *fakeMailer
	loc      *time.Location
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	repo := &fakeBookingRepo{}
	settings := &fakeSettingsRepo{accepting: true}
	mail := &fakeMailer{}

	uc := NewUseCase(
		repo,
		settings,
		mail,
		fakeTxManager{},
		domain.DefaultWeeklySchedule(),
		loc,
		nopLogger{},
	).WithTimeProvider(fixedTime{now: now})

	return &fixture{uc: uc, repo: repo, settings: settings, mail: mail, loc: loc}
}

// 2 марта 2026 - понедельник; слот 14:15 по Нью-Йорку
func mondaySlot(loc *time.Location) time.Time {
	return time.Date(2026, 3, 2, 14, 15, 0, 0, loc)
}

func validRequest(loc *time.Location) *Request {
	return &Request{
		Date:     mondaySlot(loc),
		TimeSlot: "2:15 PM",
		ClientInfo: domain.ClientInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
	}
}

// Тесты

func TestExecute_Success(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	resp, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.NotEqual(t, "", resp.Reference.String())
	assert.Equal(t, "2026-03-02", resp.SlotDate.Format(domain.DateFormat))
	assert.Equal(t, "14:15", resp.StartTime.String())
	assert.Equal(t, "2:15 PM", resp.TimeSlot)
	assert.Equal(t, time.UTC, resp.Date.Location(), "instant is stored in UTC")

	// Подтверждение ушло
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "jane@example.com", f.mail.sent[0].ClientEmail)
}

func TestExecute_SlotTaken(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	_, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	require.NoError(t, err)

	second := validRequest(f.loc)
	second.ClientInfo.Email = "john@example.com"
	_, err = f.uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_BookingsClosed(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	f := newFixture(t, now)
	f.settings.accepting = false

	_, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	assert.ErrorIs(t, err, ErrBookingsClosed)

	// До хранилища дойти не должны
	assert.Empty(t, f.repo.bookings)
}

func TestExecute_ValidationErrors(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing name",
			mutate:  func(r *Request) { r.ClientInfo.Name = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad email",
			mutate:  func(r *Request) { r.ClientInfo.Email = "not-an-email" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "label does not match instant",
			mutate:  func(r *Request) { r.TimeSlot = "3:00 PM" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "off-grid time",
			mutate:  func(r *Request) { r.Date = time.Date(2026, 3, 2, 14, 10, 0, 0, loc); r.TimeSlot = "" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "non-business day",
			mutate:  func(r *Request) { r.Date = time.Date(2026, 3, 3, 14, 15, 0, 0, loc); r.TimeSlot = "" },
			wantErr: ErrInvalidTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, now)
			req := validRequest(f.loc)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.repo.bookings)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 3, 9, 0, 0, 0, loc) // вторник после слота
	f := newFixture(t, now)

	_, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TooLateToBook(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")

	// Ровно за час до начала - уже поздно
	now := time.Date(2026, 3, 2, 13, 15, 0, 0, loc)
	f := newFixture(t, now)

	_, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Секундой раньше - еще можно
	f = newFixture(t, now.Add(-time.Second))
	_, err = f.uc.Execute(context.Background(), validRequest(f.loc))
	assert.NoError(t, err)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	f := newFixture(t, now)
	f.mail.fail = true

	resp, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Len(t, f.repo.bookings, 1)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), validRequest(f.loc))
		}(i)
	}
	wg.Wait()

	// Ровно одно бронирование выигрывает гонку, остальные получают конфликт
	success, conflict := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		default:
			assert.ErrorIs(t, err, ErrSlotTaken)
			conflict++
		}
	}

	assert.Equal(t, 1, success)
	assert.Equal(t, attempts-1, conflict)
	assert.Len(t, f.repo.bookings, 1)
}

func TestExecute_BookingLandsInIndex(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	resp, err := f.uc.Execute(context.Background(), validRequest(f.loc))
	require.NoError(t, err)

	// Созданное бронирование видно индексу доступности под локальным ключом
	dayBookings, err := f.repo.GetBySlotDate(context.Background(), resp.SlotDate)
	require.NoError(t, err)

	index := domain.BuildIndex(dayBookings, f.loc)
	key := localdate.Key(resp.Date, f.loc)
	assert.True(t, index.IsBooked(key, resp.StartTime))
}
