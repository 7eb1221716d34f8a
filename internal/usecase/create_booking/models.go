package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	// Date абсолютный инстант начала слота (дата + время)
	Date time.Time

	// TimeSlot отображаемая метка слота ("2:15 PM"). Избыточна
	// относительно Date: используется только для перекрестной проверки,
	// ключом сравнения никогда не является.
	TimeSlot string

	ClientInfo  domain.ClientInfo
	ServiceType *string
	Duration    *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Reference uuid.UUID
	Date      time.Time
	SlotDate  time.Time
	StartTime types.TimeString
	TimeSlot  string // отображаемая метка слота

	ClientInfo  domain.ClientInfo
	ServiceType *string
	Duration    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
