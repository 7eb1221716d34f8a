package domain

import (
	"sort"
	"time"

	"github.com/nangenlabs/NGL-SiteService/pkg/localdate"
	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// AvailabilityIndex is the derived mapping from business-local date key
// ("YYYY-MM-DD") to the ordered set of already-booked slot starts. It has no
// persistence of its own: it is rebuilt wholesale from the booking records
// after every booking attempt and must be treated as stale the moment a
// booking succeeds.
type AvailabilityIndex map[string][]types.TimeString

// BuildIndex группирует бронирования по локальной календарной дате их
// инстанта. Ключ считается через явную конвертацию таймзоны, а не через
// срез ISO-строки: два инстанта, соседние по UTC-календарю, но лежащие в
// одном локальном дне, обязаны попасть под один ключ.
func BuildIndex(bookings []*Booking, loc *time.Location) AvailabilityIndex {
	index := make(AvailabilityIndex)

	for _, b := range bookings {
		key := localdate.Key(b.Date, loc)
		index[key] = append(index[key], b.StartTime)
	}

	for key := range index {
		slots := index[key]
		sort.Slice(slots, func(i, j int) bool {
			return slots[i].IsBefore(slots[j])
		})
		index[key] = slots
	}

	return index
}

// IsBooked reports whether the slot is already taken on the given local date.
func (idx AvailabilityIndex) IsBooked(dateKey string, start types.TimeString) bool {
	for _, s := range idx[dateKey] {
		if s == start {
			return true
		}
	}
	return false
}

// BookedOn returns the ordered booked slot starts for the given local date.
func (idx AvailabilityIndex) BookedOn(dateKey string) []types.TimeString {
	return idx[dateKey]
}
