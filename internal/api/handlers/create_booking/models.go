package create_booking

import (
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	createBooking "github.com/nangenlabs/NGL-SiteService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"`               // инстант начала слота, RFC 3339
	TimeSlot    string  `json:"timeSlot,omitempty"` // отображаемая метка, например "2:15 PM"
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Company     *string `json:"company,omitempty"`
	Message     *string `json:"message,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
	Duration    *string `json:"duration,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	Date        string  `json:"date"`     // RFC 3339, UTC
	SlotDate    string  `json:"slotDate"` // "2026-03-02"
	StartTime   string  `json:"startTime"`
	TimeSlot    string  `json:"timeSlot"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Company     *string `json:"company,omitempty"`
	Message     *string `json:"message,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:     date,
		TimeSlot: r.TimeSlot,
		ClientInfo: domain.ClientInfo{
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Company: r.Company,
			Message: r.Message,
		},
		ServiceType: r.ServiceType,
		Duration:    r.Duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Reference:   resp.Reference.String(),
		Date:        resp.Date.Format(time.RFC3339),
		SlotDate:    resp.SlotDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		TimeSlot:    resp.TimeSlot,
		Name:        resp.ClientInfo.Name,
		Email:       resp.ClientInfo.Email,
		Phone:       resp.ClientInfo.Phone,
		Company:     resp.ClientInfo.Company,
		Message:     resp.ClientInfo.Message,
		ServiceType: resp.ServiceType,
		Duration:    resp.Duration,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
