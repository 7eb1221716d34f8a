package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	bookingRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/booking"
	"github.com/nangenlabs/NGL-SiteService/internal/integrations/mailer"
	"github.com/nangenlabs/NGL-SiteService/pkg/localdate"
	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// UseCase use case создания бронирования. Авторитетный путь: проверки на
// клиенте не считаются пройденными, все правила применяются заново, а гонку
// за слот разрешает хранилище.
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	mailClient   Mailer
	txManager    TransactionManager
	schedule     domain.WeeklySchedule
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	mailClient Mailer,
	txManager TransactionManager,
	schedule domain.WeeklySchedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		mailClient:   mailClient,
		txManager:    txManager,
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

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, timeSlot=%q, email=%s",
		req.Date.Format(time.RFC3339), req.TimeSlot, req.ClientInfo.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	req.ClientInfo.Normalize()

	// 2. Текущее время
	now := uc.timeProvider.Now()

	// 3. Глобальный тумблер: читается в начале каждого запроса, при
	// выключенном приеме до хранилища бронирований не доходим
	siteSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get site settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get site settings: %v", ErrInternal, err)
	}
	if !siteSettings.AcceptingBookings {
		uc.logger.Warn("CreateBooking: bookings are closed, rejecting")
		return nil, ErrBookingsClosed
	}

	// 4. Нормализуем инстант в бизнес-таймзону: локальная дата + время
	// начала - канонический ключ слота
	slotDate := localdate.DateOf(req.Date, uc.location)
	startTime := types.NewTimeString(req.Date.In(uc.location))

	// 5. Метка слота, если передана, обязана совпадать с инстантом
	if err := validateTimeSlotLabel(req.TimeSlot, startTime); err != nil {
		uc.logger.Warn("CreateBooking: time slot label mismatch: %v", err)
		return nil, err
	}

	// 6. Дата в прошлом
	if localdate.IsPastDate(req.Date, now, uc.location) {
		uc.logger.Warn("CreateBooking: date %s is in the past", slotDate.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 7. Слот должен лежать на сетке расписания
	if !uc.schedule.ContainsSlot(req.Date, startTime, uc.location) {
		uc.logger.Warn("CreateBooking: %s %s is not a valid schedule slot",
			slotDate.Format(domain.DateFormat), startTime)
		return nil, ErrInvalidTimeSlot
	}

	// 8. Lead time: слот закрывается за час до начала
	if domain.IsSlotClosed(req.Date, startTime, now, uc.location) {
		uc.logger.Warn("CreateBooking: too late to book %s %s",
			slotDate.Format(domain.DateFormat), startTime)
		return nil, ErrTooLateToBook
	}

	var result *domain.Booking

	// 9. Сериализуемая транзакция: чтение занятости дня с блокировкой,
	// проверка конфликта, вставка. Уникальный индекс страхует снизу.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayBookings, err := uc.bookingRepo.GetBySlotDate(txCtx, slotDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get day bookings: %v", err)
			return fmt.Errorf("%w: failed to get day bookings: %v", ErrInternal, err)
		}

		for _, b := range dayBookings {
			if b.StartTime == startTime {
				return ErrSlotTaken
			}
		}

		newBooking := &domain.Booking{
			Reference:   uuid.New(),
			Date:        req.Date.UTC(),
			SlotDate:    slotDate,
			StartTime:   startTime,
			ClientInfo:  req.ClientInfo,
			ServiceType: req.ServiceType,
			Duration:    req.Duration,
		}

		created, err := uc.bookingRepo.Create(txCtx, newBooking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken",
				slotDate.Format(domain.DateFormat), startTime)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s",
		result.ID, result.Reference)

	// 10. Подтверждение по почте - best-effort, бронирование уже в БД
	uc.sendConfirmation(result)

	return &Response{
		ID:          result.ID,
		Reference:   result.Reference,
		Date:        result.Date,
		SlotDate:    result.SlotDate,
		StartTime:   result.StartTime,
		TimeSlot:    result.TimeSlotLabel(),
		ClientInfo:  result.ClientInfo,
		ServiceType: result.ServiceType,
		Duration:    result.Duration,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func (uc *UseCase) sendConfirmation(b *domain.Booking) {
	data := &mailer.BookingEmailData{
		Reference:   b.Reference.String(),
		ClientName:  b.ClientInfo.Name,
		ClientEmail: b.ClientInfo.Email,
		Date:        b.SlotDate.Format(domain.DateFormat),
		TimeSlot:    b.TimeSlotLabel(),
		ServiceType: b.ServiceType,
		Duration:    b.Duration,
	}

	if err := uc.mailClient.SendBookingConfirmation(data); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email failed for booking id=%d: %v", b.ID, err)
	}
}
