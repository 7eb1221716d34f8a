package get_available_slots

import (
	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	getSlots "github.com/nangenlabs/NGL-SiteService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "14:15"
	TimeSlot        string `json:"timeSlot"`  // "2:15 PM"
	DurationMinutes int    `json:"durationMinutes"`
	Disabled        bool   `json:"disabled"`
	Booked          bool   `json:"booked"`
}

// SlotsResponse HTTP ответ со слотами на дату
type SlotsResponse struct {
	Date  string         `json:"date"` // "2026-03-02"
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       s.StartTime.String(),
			TimeSlot:        s.TimeSlot,
			DurationMinutes: s.DurationMinutes,
			Disabled:        s.Disabled,
			Booked:          s.Booked,
		}
	}

	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
