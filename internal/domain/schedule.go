package domain

import (
	"time"

	"github.com/nangenlabs/NGL-SiteService/pkg/localdate"
	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// SlotWindow is a half-open working window [Open, Close) on one weekday.
// Slots are generated on the grid inside it; a slot starting at Close does
// not exist.
type SlotWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// WeeklySchedule maps weekdays to their bookable windows. Weekdays absent
// from the map are not business days and yield no slots at all.
type WeeklySchedule map[time.Weekday][]SlotWindow

// DefaultWeeklySchedule returns the studio's fixed consultation schedule:
// Monday 2:00-4:00 PM and Wednesday 4:00-6:00 PM, business-local time.
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		time.Monday:    {{Open: "14:00", Close: "16:00"}},
		time.Wednesday: {{Open: "16:00", Close: "18:00"}},
	}
}

// Slot is one bookable interval of the day's grid. Disabled means the slot
// is shown but can no longer be selected (lead time passed or the date is in
// the past); whether it is already booked is a separate concern handled by
// the AvailabilityIndex.
type Slot struct {
	StartTime types.TimeString
	Disabled  bool
}

// Label returns the client-facing display form of the slot, e.g. "2:15 PM".
func (s Slot) Label() string {
	return s.StartTime.Label()
}

// CandidateSlots возвращает слоты на дату в хронологическом порядке.
// Функция чистая: "сейчас" передается снаружи, чтобы граница lead time
// тестировалась точно.
func (ws WeeklySchedule) CandidateSlots(date time.Time, now time.Time, loc *time.Location) []Slot {
	windows, ok := ws[date.In(loc).Weekday()]
	if !ok {
		return []Slot{}
	}

	// Дата целиком в прошлом - все слоты закрыты независимо от времени
	pastDate := localdate.IsPastDate(date, now, loc)

	slots := make([]Slot, 0)
	for _, w := range windows {
		current := w.Open
		for current.IsBefore(w.Close) {
			disabled := pastDate || isSlotClosed(date, current, now, loc)
			slots = append(slots, Slot{StartTime: current, Disabled: disabled})

			next, err := current.AddMinutes(SlotStepMinutes)
			if err != nil {
				break
			}
			current = next
		}
	}

	return slots
}

// ContainsSlot reports whether the given start time is a valid grid slot for
// the date's weekday, regardless of lead time or booking state.
func (ws WeeklySchedule) ContainsSlot(date time.Time, start types.TimeString, loc *time.Location) bool {
	for _, slot := range ws.CandidateSlots(date, date, loc) {
		if slot.StartTime == start {
			return true
		}
	}
	return false
}

// SlotStartInstant returns the absolute instant at which the slot begins:
// the calendar date of `date` in loc, at the slot's time of day.
func SlotStartInstant(date time.Time, start types.TimeString, loc *time.Location) time.Time {
	day := localdate.DateOf(date, loc)
	parsed, err := time.Parse("15:04", start.String())
	if err != nil {
		return day
	}
	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
}

// isSlotClosed проверяет условие lead time: слот закрывается, когда до его
// начала остается меньше LeadTimeMinutes. Граница включительно - ровно за
// час до начала слот уже закрыт.
func isSlotClosed(date time.Time, start types.TimeString, now time.Time, loc *time.Location) bool {
	startInstant := SlotStartInstant(date, start, loc)
	cutoff := startInstant.Add(-LeadTimeMinutes * time.Minute)
	return !now.Before(cutoff)
}

// IsSlotClosed exported wrapper used by the booking accept path.
func IsSlotClosed(date time.Time, start types.TimeString, now time.Time, loc *time.Location) bool {
	return isSlotClosed(date, start, now, loc)
}
