package utils

import (
	"fmt"
	"time"
)

// DateLayout — формат календарной даты во всех API и DTO.
const DateLayout = "2006-01-02"

// ParseDate разбирает дату вида "2025-06-01" и нормализует её к полуночи UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("неверный формат даты '%s', ожидается YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDay отбрасывает время, оставляя календарную дату (полночь UTC).
// Все расчёты планировщика ведутся по таким нормализованным датам.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, days)
}

func SameDay(a, b time.Time) bool {
	return TruncateToDay(a).Equal(TruncateToDay(b))
}

// IsWorkingDay — рабочий день = не суббота и не воскресенье.
// Праздники задаются явными записями недоступности, а не календарём.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysInRange считает рабочие дни в закрытом интервале [start, end].
// Если end раньше start — ноль.
func WorkingDaysInRange(start, end time.Time) int {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// ExpandDateRange разворачивает закрытый интервал [start, end] в упорядоченный
// список календарных дат. Для end < start возвращает пустой список.
func ExpandDateRange(start, end time.Time) []time.Time {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// CalendarDaysInRange — число календарных дней закрытого интервала.
func CalendarDaysInRange(start, end time.Time) int {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
