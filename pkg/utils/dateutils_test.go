package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 2, d.Day())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("02.06.2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestIsWorkingDay(t *testing.T) {
	// 2025-06-02 — понедельник, 2025-06-07 — суббота, 2025-06-08 — воскресенье
	assert.True(t, IsWorkingDay(mustDate(t, "2025-06-02")))
	assert.True(t, IsWorkingDay(mustDate(t, "2025-06-06")))
	assert.False(t, IsWorkingDay(mustDate(t, "2025-06-07")))
	assert.False(t, IsWorkingDay(mustDate(t, "2025-06-08")))
}

func TestWorkingDaysInRange(t *testing.T) {
	// Пн-Пт — 5 рабочих дней (сценарий из расчёта плановых часов)
	assert.Equal(t, 5, WorkingDaysInRange(mustDate(t, "2025-06-02"), mustDate(t, "2025-06-06")))

	// Полная неделя Пн-Вс — те же 5
	assert.Equal(t, 5, WorkingDaysInRange(mustDate(t, "2025-06-02"), mustDate(t, "2025-06-08")))

	// Выходные целиком — 0
	assert.Equal(t, 0, WorkingDaysInRange(mustDate(t, "2025-06-07"), mustDate(t, "2025-06-08")))

	// Один день
	assert.Equal(t, 1, WorkingDaysInRange(mustDate(t, "2025-06-02"), mustDate(t, "2025-06-02")))

	// Перевёрнутый интервал
	assert.Equal(t, 0, WorkingDaysInRange(mustDate(t, "2025-06-06"), mustDate(t, "2025-06-02")))
}

func TestExpandDateRange(t *testing.T) {
	dates := ExpandDateRange(mustDate(t, "2025-06-01"), mustDate(t, "2025-06-03"))
	require.Len(t, dates, 3)
	assert.Equal(t, "2025-06-01", FormatDate(dates[0]))
	assert.Equal(t, "2025-06-02", FormatDate(dates[1]))
	assert.Equal(t, "2025-06-03", FormatDate(dates[2]))

	// Один день — один элемент
	dates = ExpandDateRange(mustDate(t, "2025-06-15"), mustDate(t, "2025-06-15"))
	require.Len(t, dates, 1)

	// end < start — пусто
	assert.Empty(t, ExpandDateRange(mustDate(t, "2025-06-03"), mustDate(t, "2025-06-01")))

	// Переход через границу месяца
	dates = ExpandDateRange(mustDate(t, "2025-06-29"), mustDate(t, "2025-07-02"))
	require.Len(t, dates, 4)
	assert.Equal(t, "2025-07-01", FormatDate(dates[2]))
}

func TestCalendarDaysInRange(t *testing.T) {
	assert.Equal(t, 7, CalendarDaysInRange(mustDate(t, "2025-06-02"), mustDate(t, "2025-06-08")))
	assert.Equal(t, 1, CalendarDaysInRange(mustDate(t, "2025-06-02"), mustDate(t, "2025-06-02")))
	assert.Equal(t, 0, CalendarDaysInRange(mustDate(t, "2025-06-03"), mustDate(t, "2025-06-02")))
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2025, 6, 2, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, mustDate(t, "2025-06-02"), TruncateToDay(ts))
}

func TestAddDaysAndSameDay(t *testing.T) {
	d := mustDate(t, "2025-06-30")
	assert.Equal(t, "2025-07-01", FormatDate(AddDays(d, 1)))
	assert.True(t, SameDay(d, time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, SameDay(d, AddDays(d, 1)))
}
