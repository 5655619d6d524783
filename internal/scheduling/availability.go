package scheduling

import (
	"time"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
	"scheduling-system/pkg/utils"
)

// DayAvailability — сводка доступности ресурса на одну дату.
type DayAvailability struct {
	Date               string  `json:"date"`
	IsAvailable        bool    `json:"is_available"`
	AvailableHours     float64 `json:"available_hours"`
	AssignedHours      float64 `json:"assigned_hours"`
	RemainingHours     float64 `json:"remaining_hours"`
	UnavailabilityType string  `json:"unavailability_type,omitempty"`
}

// CalendarCell — ячейка календаря ресурса для UI: доступность плюс загрузка.
type CalendarCell struct {
	Date               string  `json:"date"`
	IsWorkingDay       bool    `json:"is_working_day"`
	IsAvailable        bool    `json:"is_available"`
	AvailableHours     float64 `json:"available_hours"`
	AssignedHours      float64 `json:"assigned_hours"`
	RemainingHours     float64 `json:"remaining_hours"`
	UtilizationPercent float64 `json:"utilization_percent"`
	IsOverAllocated    bool    `json:"is_over_allocated"`
	UnavailabilityType string  `json:"unavailability_type,omitempty"`
}

type OverAllocationResult struct {
	IsOverAllocated bool    `json:"is_over_allocated"`
	ExcessHours     float64 `json:"excess_hours"`
}

// baseAvailableHours — базовые доступные часы на дату.
// Явная запись недоступности переопределяет всё (в том числе частичным
// сокращением часов). Без записи: рабочий день — полная дневная ёмкость,
// выходной — ноль. Отсутствие записи означает "доступен по умолчанию".
func baseAvailableHours(
	resourceID uint64,
	date time.Time,
	res entities.EngineeringResource,
	unavailability []entities.ResourceAvailability,
) (hours float64, isAvailable bool, unavType string) {
	for _, u := range unavailability {
		if u.ResourceID != resourceID || !utils.SameDay(u.Date, date) {
			continue
		}
		if !u.IsAvailable {
			return u.AvailableHours, false, u.UnavailabilityType
		}
		// Частичное сокращение: ресурс доступен, но часов меньше
		return u.AvailableHours, u.AvailableHours > 0, u.UnavailabilityType
	}

	if !utils.IsWorkingDay(date) {
		return 0, false, ""
	}
	return res.DailyCapacity, true, ""
}

// assignmentHoursOn — часы, которые назначение занимает на данной дате.
//
// Плановые часы распределяются по рабочим дням интервала. Если интервал
// не содержит ни одного рабочего дня, явно заданные часы распределяются по
// календарным дням — только так часы начисляются на выходные. Назначение без
// плановых часов занимает дневную ёмкость ресурса в каждый рабочий день.
func assignmentHoursOn(a entities.ResourceAssignment, date time.Time, dailyCapacity float64) float64 {
	if !a.CoversDate(date) {
		return 0
	}

	if a.PlannedHours.Valid {
		workDays := utils.WorkingDaysInRange(a.StartDate, a.EndDate)
		if workDays > 0 {
			if !utils.IsWorkingDay(date) {
				return 0
			}
			return a.PlannedHours.Float64 / float64(workDays)
		}
		calDays := utils.CalendarDaysInRange(a.StartDate, a.EndDate)
		if calDays == 0 {
			return 0
		}
		return a.PlannedHours.Float64 / float64(calDays)
	}

	if !utils.IsWorkingDay(date) {
		return 0
	}
	return dailyCapacity
}

// AssignedHoursOn суммирует занятые часы ресурса на дату по всем активным
// назначениям (scheduled/in_progress). Завершённые и отменённые — история,
// в расчёте не участвуют.
func AssignedHoursOn(
	resourceID uint64,
	date time.Time,
	res entities.EngineeringResource,
	assignments []entities.ResourceAssignment,
) float64 {
	total := 0.0
	for _, a := range assignments {
		if a.ResourceID != resourceID {
			continue
		}
		if !constants.IsActiveAssignmentStatus(a.Status) {
			continue
		}
		total += assignmentHoursOn(a, date, res.DailyCapacity)
	}
	return total
}

// CheckAvailability собирает сводку доступности ресурса на дату.
// Инвариант: RemainingHours == AvailableHours - AssignedHours, всегда.
func CheckAvailability(
	resourceID uint64,
	date time.Time,
	res entities.EngineeringResource,
	assignments []entities.ResourceAssignment,
	unavailability []entities.ResourceAvailability,
) DayAvailability {
	date = utils.TruncateToDay(date)

	available, isAvailable, unavType := baseAvailableHours(resourceID, date, res, unavailability)
	assigned := AssignedHoursOn(resourceID, date, res, assignments)

	return DayAvailability{
		Date:               utils.FormatDate(date),
		IsAvailable:        isAvailable,
		AvailableHours:     available,
		AssignedHours:      assigned,
		RemainingHours:     available - assigned,
		UnavailabilityType: unavType,
	}
}

// CalculateUtilization — загрузка в процентах: assigned/available*100.
// При нулевых доступных часах возвращает 0, а не ошибку — деление на ноль
// гасится намеренно, это осознанная политика, а не баг.
func CalculateUtilization(assignedHours, availableHours float64) float64 {
	if availableHours == 0 {
		return 0
	}
	return assignedHours / availableHours * 100
}

// IsOverAllocated — перегрузка строго выше 100%. Ровно 100% — ещё не перегрузка.
func IsOverAllocated(percent float64) bool {
	return percent > 100
}

// DetectOverAllocation проверяет, не перегрузят ли ресурс дополнительные часы
// на дату. Результат рекомендательный: бронь не блокируется, решение за
// вызывающей стороной.
func DetectOverAllocation(
	resourceID uint64,
	date time.Time,
	additionalHours float64,
	res entities.EngineeringResource,
	assignments []entities.ResourceAssignment,
	unavailability []entities.ResourceAvailability,
) OverAllocationResult {
	day := CheckAvailability(resourceID, date, res, assignments, unavailability)

	excess := day.AssignedHours + additionalHours - day.AvailableHours
	if excess > 0 {
		return OverAllocationResult{IsOverAllocated: true, ExcessHours: excess}
	}
	return OverAllocationResult{}
}

// GenerateCalendarCell собирает ячейку календаря на дату: доступность,
// часы и процент загрузки одним объектом.
func GenerateCalendarCell(
	res entities.EngineeringResource,
	date time.Time,
	assignments []entities.ResourceAssignment,
	unavailability []entities.ResourceAvailability,
) CalendarCell {
	date = utils.TruncateToDay(date)

	day := CheckAvailability(res.ID, date, res, assignments, unavailability)
	pct := CalculateUtilization(day.AssignedHours, day.AvailableHours)

	return CalendarCell{
		Date:               day.Date,
		IsWorkingDay:       utils.IsWorkingDay(date),
		IsAvailable:        day.IsAvailable,
		AvailableHours:     day.AvailableHours,
		AssignedHours:      day.AssignedHours,
		RemainingHours:     day.RemainingHours,
		UtilizationPercent: pct,
		IsOverAllocated:    IsOverAllocated(pct),
		UnavailabilityType: day.UnavailabilityType,
	}
}

// CalculatePlannedHours — плановые часы на интервал: рабочие дни * дневная
// ёмкость. Нулевая ёмкость даёт ноль при любой длине интервала.
func CalculatePlannedHours(start, end time.Time, dailyCapacity float64) float64 {
	return float64(utils.WorkingDaysInRange(start, end)) * dailyCapacity
}
