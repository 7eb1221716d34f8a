package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	"github.com/nangenlabs/NGL-SiteService/pkg/localdate"
)

// UseCase use case получения сетки слотов на дату с пометками занятости
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	schedule     domain.WeeklySchedule
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	schedule domain.WeeklySchedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		schedule:     schedule,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Глобальный тумблер
	siteSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get site settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get site settings: %v", ErrInternal, err)
	}
	if !siteSettings.AcceptingBookings {
		uc.logger.Info("GetAvailableSlots: bookings are closed")
		return nil, ErrBookingsClosed
	}

	// 3. Текущее время
	now := uc.timeProvider.Now()

	// 4. Сетка слотов расписания с пометками lead time / прошедшей даты
	candidates := uc.schedule.CandidateSlots(req.Date, now, uc.location)

	// 5. Занятость: бронирования дня, сгруппированные по локальной дате
	slotDate := localdate.DateOf(req.Date, uc.location)
	dayBookings, err := uc.bookingRepo.GetBySlotDate(ctx, slotDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	index := domain.BuildIndex(dayBookings, uc.location)
	dateKey := localdate.Key(slotDate, uc.location)

	slots := make([]Slot, len(candidates))
	for i, c := range candidates {
		slots[i] = Slot{
			StartTime:       c.StartTime,
			TimeSlot:        c.Label(),
			DurationMinutes: domain.SlotDurationMinutes,
			Disabled:        c.Disabled,
			Booked:          index.IsBooked(dateKey, c.StartTime),
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %s", len(slots), dateKey)

	return &Response{
		Date:  slotDate,
		Slots: slots,
	}, nil
}
