package models

import (
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
)

// UpdateAvailabilityRequest запрос на смену глобального тумблера приема
type UpdateAvailabilityRequest struct {
	AcceptingBookings bool `json:"isAvailable"`
}

// AvailabilityResponse ответ с текущим состоянием приема бронирований
type AvailabilityResponse struct {
	AcceptingBookings bool      `json:"isAvailable"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SiteSettings) *AvailabilityResponse {
	if s == nil {
		return nil
	}

	return &AvailabilityResponse{
		AcceptingBookings: s.AcceptingBookings,
		UpdatedAt:         s.UpdatedAt,
	}
}
