package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	bookingRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/booking"
	"github.com/nangenlabs/NGL-SiteService/internal/service/bookings/models"
	"github.com/nangenlabs/NGL-SiteService/pkg/localdate"
)

// Service сервис для работы с бронированиями (админский контур и публичный
// список занятых слотов)
type Service struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией по дате или периоду
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, slotDate=%v, from=%v, to=%v",
		req.SlotDate, req.From, req.To)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("List: invalid period, to is before from")
		return nil, fmt.Errorf("%w: period end is before period start", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListBookedSlots получает занятые слоты начиная с сегодняшней локальной даты.
// Публичный метод: персональные данные клиентов в ответ не попадают.
func (s *Service) ListBookedSlots(ctx context.Context) (*models.BookedSlotsResponse, error) {
	today := localdate.DateOf(s.timeProvider.Now(), s.location)
	s.logger.Info("ListBookedSlots: fetching booked slots from %s", localdate.Key(today, s.location))

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{From: &today})
	if err != nil {
		s.logger.Error("ListBookedSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookedSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookedSlots: successfully fetched %d booked slots", len(bookings))
	return models.FromDomainBookedSlots(bookings), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time {
	return time.Now()
}
