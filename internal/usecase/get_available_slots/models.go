package get_available_slots

import (
	"time"

	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель временного слота.
// Disabled - слот больше нельзя выбрать (lead time или прошедшая дата),
// Booked - слот уже занят. UI показывает оба состояния по-разному, поэтому
// слоты не выбрасываются из списка, а помечаются.
type Slot struct {
	StartTime       types.TimeString
	TimeSlot        string // отображаемая метка, например "2:15 PM"
	DurationMinutes int
	Disabled        bool
	Booked          bool
}
