package localdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestKey_UTCAdjacentDates(t *testing.T) {
	loc := newYork(t)

	// Вечер 2 марта в Нью-Йорке - это уже 3 марта по UTC. Срез UTC-строки
	// дал бы "2026-03-03"; явная конвертация обязана дать "2026-03-02".
	evening := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC) // 20:00 EST, 2 марта
	assert.Equal(t, "2026-03-02", Key(evening, loc))
	assert.Equal(t, "2026-03-03", Key(evening, time.UTC))
}

func TestKey_Morning(t *testing.T) {
	loc := newYork(t)

	morning := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC) // 09:00 EST
	assert.Equal(t, "2026-03-02", Key(morning, loc))
}

func TestDateOf(t *testing.T) {
	loc := newYork(t)

	evening := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
	midnight := DateOf(evening, loc)

	assert.Equal(t, 2026, midnight.Year())
	assert.Equal(t, time.March, midnight.Month())
	assert.Equal(t, 2, midnight.Day())
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, loc, midnight.Location())
}

func TestSameDay(t *testing.T) {
	loc := newYork(t)

	// Оба инстанта 2 марта по Нью-Йорку, хотя по UTC даты разные
	a := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))
}

func TestIsPastDate(t *testing.T) {
	loc := newYork(t)
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, loc)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "yesterday", date: time.Date(2026, 3, 1, 23, 0, 0, 0, loc), want: true},
		{name: "earlier today", date: time.Date(2026, 3, 2, 9, 0, 0, 0, loc), want: false},
		{name: "tomorrow", date: time.Date(2026, 3, 3, 0, 0, 0, 0, loc), want: false},
		{name: "same local day via UTC instant", date: time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPastDate(tt.date, now, loc))
		})
	}
}
