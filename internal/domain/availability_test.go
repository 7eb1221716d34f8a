package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

func booking(date time.Time, start types.TimeString) *Booking {
	return &Booking{Date: date, StartTime: start}
}

func TestBuildIndex_GroupsByLocalDate(t *testing.T) {
	loc := newYork(t)

	// Оба инстанта - вечер 2 марта по Нью-Йорку; по UTC второй уже 3 марта
	bookings := []*Booking{
		booking(time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC), "14:00"),
		booking(time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC), "20:00"),
	}

	index := BuildIndex(bookings, loc)

	require.Len(t, index, 1)
	assert.Equal(t, []types.TimeString{"14:00", "20:00"}, index.BookedOn("2026-03-02"))
	assert.Empty(t, index.BookedOn("2026-03-03"))
}

func TestBuildIndex_SortsWithinDay(t *testing.T) {
	loc := newYork(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	bookings := []*Booking{
		booking(day.Add(15*time.Hour+45*time.Minute), "15:45"),
		booking(day.Add(14*time.Hour), "14:00"),
		booking(day.Add(15*time.Hour), "15:00"),
	}

	index := BuildIndex(bookings, loc)
	assert.Equal(t, []types.TimeString{"14:00", "15:00", "15:45"}, index.BookedOn("2026-03-02"))
}

func TestBuildIndex_Rebuild(t *testing.T) {
	loc := newYork(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	bookings := []*Booking{booking(day.Add(14*time.Hour), "14:00")}

	// Индекс не хранит состояния: повторная сборка из тех же записей
	// дает тот же результат
	first := BuildIndex(bookings, loc)
	second := BuildIndex(bookings, loc)
	assert.Equal(t, first, second)

	// А сборка после нового бронирования его отражает
	bookings = append(bookings, booking(day.Add(14*time.Hour+15*time.Minute), "14:15"))
	third := BuildIndex(bookings, loc)
	assert.True(t, third.IsBooked("2026-03-02", "14:15"))
	assert.False(t, first.IsBooked("2026-03-02", "14:15"))
}

func TestIsBooked(t *testing.T) {
	loc := newYork(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	index := BuildIndex([]*Booking{booking(day.Add(14*time.Hour), "14:00")}, loc)

	assert.True(t, index.IsBooked("2026-03-02", "14:00"))
	assert.False(t, index.IsBooked("2026-03-02", "14:15"))
	assert.False(t, index.IsBooked("2026-03-09", "14:00"))
}

func TestBuildIndex_Empty(t *testing.T) {
	loc := newYork(t)

	index := BuildIndex(nil, loc)
	assert.Empty(t, index)
	assert.False(t, index.IsBooked("2026-03-02", "14:00"))
}
