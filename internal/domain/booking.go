package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// Booking represents a confirmed appointment. A booking is created only
// through the accept path and never mutated afterwards; removal is an
// administrative action.
type Booking struct {
	ID        int64
	Reference uuid.UUID

	// Date is the absolute start instant, stored in UTC. SlotDate and
	// StartTime are the normalized business-local pair derived from it;
	// they carry the uniqueness invariant: no two bookings may share the
	// same (SlotDate, StartTime).
	Date      time.Time
	SlotDate  time.Time
	StartTime types.TimeString

	ClientInfo ClientInfo

	// Descriptive metadata, no effect on slot computation
	ServiceType *string
	Duration    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeSlotLabel returns the display form of the slot, e.g. "2:15 PM".
func (b *Booking) TimeSlotLabel() string {
	return b.StartTime.Label()
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	SlotDate *time.Time // Конкретная локальная дата (опционально)
	From     *time.Time // Начало периода (опционально)
	To       *time.Time // Конец периода (опционально)
}
