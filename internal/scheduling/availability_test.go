package scheduling

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
)

func resource8h() entities.EngineeringResource {
	return entities.EngineeringResource{
		ID:            1,
		ResourceCode:  "PER0001",
		Name:          "Инженер Каримов",
		ResourceType:  string(constants.ResourceTypePersonnel),
		DailyCapacity: 8,
		IsAvailable:   true,
		IsActive:      true,
	}
}

func TestCheckAvailability_DefaultFullCapacity(t *testing.T) {
	res := resource8h()

	// Рабочий день без записей и назначений — полная ёмкость
	day := CheckAvailability(1, date(t, "2025-06-02"), res, nil, nil)
	assert.True(t, day.IsAvailable)
	assert.Equal(t, 8.0, day.AvailableHours)
	assert.Equal(t, 0.0, day.AssignedHours)
	assert.Equal(t, 8.0, day.RemainingHours)
	assert.Empty(t, day.UnavailabilityType)
}

func TestCheckAvailability_WeekendNotWorking(t *testing.T) {
	res := resource8h()

	// Суббота без явной записи — не рабочий день, ноль часов
	day := CheckAvailability(1, date(t, "2025-06-07"), res, nil, nil)
	assert.False(t, day.IsAvailable)
	assert.Equal(t, 0.0, day.AvailableHours)
}

func TestCheckAvailability_UnavailabilityOverride(t *testing.T) {
	res := resource8h()
	unav := []entities.ResourceAvailability{
		{ResourceID: 1, Date: date(t, "2025-06-03"), IsAvailable: false, AvailableHours: 0, UnavailabilityType: constants.UnavailabilityTypeLeave},
		// Частичное сокращение: доступно 4 часа вместо 8
		{ResourceID: 1, Date: date(t, "2025-06-04"), IsAvailable: true, AvailableHours: 4, UnavailabilityType: constants.UnavailabilityTypeOther},
	}

	day := CheckAvailability(1, date(t, "2025-06-03"), res, nil, unav)
	assert.False(t, day.IsAvailable)
	assert.Equal(t, 0.0, day.AvailableHours)
	assert.Equal(t, constants.UnavailabilityTypeLeave, day.UnavailabilityType)

	day = CheckAvailability(1, date(t, "2025-06-04"), res, nil, unav)
	assert.True(t, day.IsAvailable)
	assert.Equal(t, 4.0, day.AvailableHours)
}

func TestAssignedHours_PlannedHoursSpreadOverWorkingDays(t *testing.T) {
	res := resource8h()
	// 40 плановых часов на Пн-Пт — по 8 в рабочий день
	assignments := []entities.ResourceAssignment{
		{
			ID: 1, ResourceID: 1, TargetRef: "JOB-1",
			StartDate: date(t, "2025-06-02"), EndDate: date(t, "2025-06-08"),
			PlannedHours: null.Float64From(40),
			Status:       constants.AssignmentStatusScheduled,
		},
	}

	day := CheckAvailability(1, date(t, "2025-06-02"), res, assignments, nil)
	assert.InDelta(t, 8.0, day.AssignedHours, 1e-9)

	// На субботу интервала часы не начисляются
	day = CheckAvailability(1, date(t, "2025-06-07"), res, assignments, nil)
	assert.Equal(t, 0.0, day.AssignedHours)
}

func TestAssignedHours_DefaultsToDailyCapacity(t *testing.T) {
	res := resource8h()
	// Без плановых часов назначение занимает дневную ёмкость
	assignments := []entities.ResourceAssignment{
		{
			ID: 1, ResourceID: 1, TargetRef: "JOB-2",
			StartDate: date(t, "2025-06-02"), EndDate: date(t, "2025-06-06"),
			Status: constants.AssignmentStatusInProgress,
		},
	}

	day := CheckAvailability(1, date(t, "2025-06-04"), res, assignments, nil)
	assert.Equal(t, 8.0, day.AssignedHours)
	assert.Equal(t, 0.0, day.RemainingHours)
}

func TestAssignedHours_ExplicitWeekendWork(t *testing.T) {
	res := resource8h()
	// Интервал целиком на выходных с явными часами — часы распределяются
	// по календарным дням (единственный способ занять выходной)
	assignments := []entities.ResourceAssignment{
		{
			ID: 1, ResourceID: 1, TargetRef: "JOB-EMERGENCY",
			StartDate: date(t, "2025-06-07"), EndDate: date(t, "2025-06-08"),
			PlannedHours: null.Float64From(8),
			Status:       constants.AssignmentStatusScheduled,
		},
	}

	day := CheckAvailability(1, date(t, "2025-06-07"), res, assignments, nil)
	assert.InDelta(t, 4.0, day.AssignedHours, 1e-9)
}

func TestRemainingHoursIdentity(t *testing.T) {
	// Инвариант: remaining == available - assigned, на любых датах
	res := resource8h()
	assignments := []entities.ResourceAssignment{
		{
			ID: 1, ResourceID: 1, TargetRef: "JOB-1",
			StartDate: date(t, "2025-06-02"), EndDate: date(t, "2025-06-13"),
			PlannedHours: null.Float64From(50),
			Status:       constants.AssignmentStatusScheduled,
		},
		{
			ID: 2, ResourceID: 1, TargetRef: "JOB-2",
			StartDate: date(t, "2025-06-05"), EndDate: date(t, "2025-06-05"),
			Status: constants.AssignmentStatusInProgress,
		},
	}
	unav := []entities.ResourceAvailability{
		{ResourceID: 1, Date: date(t, "2025-06-06"), IsAvailable: false, UnavailabilityType: constants.UnavailabilityTypeHoliday},
	}

	for _, d := range []string{"2025-06-01", "2025-06-02", "2025-06-05", "2025-06-06", "2025-06-07", "2025-06-13", "2025-06-20"} {
		day := CheckAvailability(1, date(t, d), res, assignments, unav)
		assert.InDelta(t, day.AvailableHours-day.AssignedHours, day.RemainingHours, 1e-9,
			"remaining != available - assigned на дату %s", d)
	}
}

func TestCalculateUtilization(t *testing.T) {
	assert.Equal(t, 0.0, CalculateUtilization(5, 0), "деление на ноль гасится в 0")
	assert.Equal(t, 0.0, CalculateUtilization(0, 0))
	assert.InDelta(t, 50.0, CalculateUtilization(4, 8), 1e-9)
	assert.InDelta(t, 100.0, CalculateUtilization(8, 8), 1e-9)
	assert.InDelta(t, 150.0, CalculateUtilization(12, 8), 1e-9)
}

func TestIsOverAllocated(t *testing.T) {
	assert.False(t, IsOverAllocated(99.9))
	assert.False(t, IsOverAllocated(100), "ровно 100% — ещё не перегрузка")
	assert.True(t, IsOverAllocated(100.01))
	assert.True(t, IsOverAllocated(150))
}

func TestDetectOverAllocation(t *testing.T) {
	res := resource8h()
	assignments := []entities.ResourceAssignment{
		{
			ID: 1, ResourceID: 1, TargetRef: "JOB-1",
			StartDate: date(t, "2025-06-02"), EndDate: date(t, "2025-06-02"),
			PlannedHours: null.Float64From(6),
			Status:       constants.AssignmentStatusScheduled,
		},
	}

	// 6 занято + 4 дополнительно = 10 > 8 — перегрузка на 2 часа
	over := DetectOverAllocation(1, date(t, "2025-06-02"), 4, res, assignments, nil)
	require.True(t, over.IsOverAllocated)
	assert.InDelta(t, 2.0, over.ExcessHours, 1e-9)

	// 6 + 2 = 8 — ровно ёмкость, перегрузки нет
	over = DetectOverAllocation(1, date(t, "2025-06-02"), 2, res, assignments, nil)
	assert.False(t, over.IsOverAllocated)
	assert.Equal(t, 0.0, over.ExcessHours)
}

func TestGenerateCalendarCell(t *testing.T) {
	res := resource8h()
	assignments := []entities.ResourceAssignment{
		{
			ID: 1, ResourceID: 1, TargetRef: "JOB-1",
			StartDate: date(t, "2025-06-02"), EndDate: date(t, "2025-06-02"),
			PlannedHours: null.Float64From(12),
			Status:       constants.AssignmentStatusScheduled,
		},
	}

	cell := GenerateCalendarCell(res, date(t, "2025-06-02"), assignments, nil)
	assert.Equal(t, "2025-06-02", cell.Date)
	assert.True(t, cell.IsWorkingDay)
	assert.Equal(t, 8.0, cell.AvailableHours)
	assert.InDelta(t, 12.0, cell.AssignedHours, 1e-9)
	assert.InDelta(t, -4.0, cell.RemainingHours, 1e-9)
	assert.InDelta(t, 150.0, cell.UtilizationPercent, 1e-9)
	assert.True(t, cell.IsOverAllocated)

	// Ячейка на день отпуска
	unav := []entities.ResourceAvailability{
		{ResourceID: 1, Date: date(t, "2025-06-03"), IsAvailable: false, UnavailabilityType: constants.UnavailabilityTypeLeave},
	}
	cell = GenerateCalendarCell(res, date(t, "2025-06-03"), nil, unav)
	assert.False(t, cell.IsAvailable)
	assert.Equal(t, constants.UnavailabilityTypeLeave, cell.UnavailabilityType)
	assert.Equal(t, 0.0, cell.UtilizationPercent)
}

func TestCalculatePlannedHours(t *testing.T) {
	// Сценарий из постановки: Пн-Пт при ёмкости 8 — 40 часов
	assert.Equal(t, 40.0, CalculatePlannedHours(date(t, "2025-06-02"), date(t, "2025-06-06"), 8))

	// Нулевая ёмкость — ноль при любой длине интервала
	assert.Equal(t, 0.0, CalculatePlannedHours(date(t, "2025-06-02"), date(t, "2025-12-31"), 0))

	// Выходные не считаются
	assert.Equal(t, 0.0, CalculatePlannedHours(date(t, "2025-06-07"), date(t, "2025-06-08"), 8))
}
