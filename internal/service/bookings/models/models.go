package models

import (
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	SlotDate *time.Time `json:"slotDate,omitempty"` // Фильтр по конкретной дате (опционально)
	From     *time.Time `json:"from,omitempty"`     // Начало периода (опционально)
	To       *time.Time `json:"to,omitempty"`       // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		SlotDate: r.SlotDate,
		From:     r.From,
		To:       r.To,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	Date        time.Time `json:"date"`     // исходный инстант начала слота (UTC)
	SlotDate    string    `json:"slotDate"` // "2026-03-02"
	StartTime   string    `json:"startTime"`
	TimeSlot    string    `json:"timeSlot"` // "2:15 PM"
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Message     *string   `json:"message,omitempty"`
	ServiceType *string   `json:"serviceType,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookedSlot занятый слот без персональных данных клиента
type BookedSlot struct {
	Date      time.Time `json:"date"`     // инстант начала слота (UTC)
	SlotDate  string    `json:"slotDate"` // "2026-03-02"
	StartTime string    `json:"startTime"`
	TimeSlot  string    `json:"timeSlot"`
}

// BookedSlotsResponse ответ со списком занятых слотов
type BookedSlotsResponse struct {
	Slots []BookedSlot `json:"slots"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference.String(),
		Date:        b.Date,
		SlotDate:    b.SlotDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		TimeSlot:    b.TimeSlotLabel(),
		Name:        b.ClientInfo.Name,
		Email:       b.ClientInfo.Email,
		Phone:       b.ClientInfo.Phone,
		Company:     b.ClientInfo.Company,
		Message:     b.ClientInfo.Message,
		ServiceType: b.ServiceType,
		Duration:    b.Duration,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainBookedSlots конвертирует бронирования в публичный список занятых
// слотов: только дата и время, без контактов клиента
func FromDomainBookedSlots(bookings []*domain.Booking) *BookedSlotsResponse {
	resp := &BookedSlotsResponse{
		Slots: make([]BookedSlot, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Slots = append(resp.Slots, BookedSlot{
			Date:      b.Date,
			SlotDate:  b.SlotDate.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			TimeSlot:  b.TimeSlotLabel(),
		})
	}

	return resp
}
