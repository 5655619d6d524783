package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
	"scheduling-system/pkg/utils"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func assignment(id, resourceID uint64, start, end, status string, t *testing.T) entities.ResourceAssignment {
	t.Helper()
	return entities.ResourceAssignment{
		ID:         id,
		ResourceID: resourceID,
		TargetRef:  "JOB-1",
		StartDate:  date(t, start),
		EndDate:    date(t, end),
		Status:     status,
	}
}

func TestRangesOverlap_Symmetry(t *testing.T) {
	cases := [][4]string{
		{"2025-06-01", "2025-06-10", "2025-06-05", "2025-06-07"}, // вложение
		{"2025-06-01", "2025-06-10", "2025-06-10", "2025-06-12"}, // общая граница
		{"2025-06-01", "2025-06-10", "2025-06-11", "2025-06-12"}, // встык без пересечения
		{"2025-06-01", "2025-06-10", "2025-07-01", "2025-07-05"}, // разные месяцы
		{"2025-06-05", "2025-06-05", "2025-06-05", "2025-06-05"}, // один и тот же день
	}
	for _, c := range cases {
		a1, a2 := date(t, c[0]), date(t, c[1])
		b1, b2 := date(t, c[2]), date(t, c[3])
		assert.Equal(t, RangesOverlap(a1, a2, b1, b2), RangesOverlap(b1, b2, a1, a2),
			"пересечение должно быть симметричным: %v", c)
	}
}

func TestRangesOverlap_ClosedIntervals(t *testing.T) {
	// Идентичные интервалы пересекаются
	assert.True(t, RangesOverlap(date(t, "2025-06-01"), date(t, "2025-06-10"), date(t, "2025-06-01"), date(t, "2025-06-10")))
	// Совпадение границы (конец одного = начало другого) — пересечение
	assert.True(t, RangesOverlap(date(t, "2025-06-01"), date(t, "2025-06-10"), date(t, "2025-06-10"), date(t, "2025-06-15")))
	// Встык соседними датами (конец вчера / начало сегодня) — нет пересечения
	assert.False(t, RangesOverlap(date(t, "2025-06-01"), date(t, "2025-06-09"), date(t, "2025-06-10"), date(t, "2025-06-15")))
	// Непересекающиеся месяцы — нет пересечения
	assert.False(t, RangesOverlap(date(t, "2025-06-01"), date(t, "2025-06-30"), date(t, "2025-07-01"), date(t, "2025-07-31")))
}

func TestDetectConflicts_BookingCollision(t *testing.T) {
	// Сценарий из постановки: у ресурса бронь [2025-06-01, 2025-06-10] (scheduled).
	existing := []entities.ResourceAssignment{
		assignment(101, 7, "2025-06-01", "2025-06-10", constants.AssignmentStatusScheduled, t),
	}

	// Кандидат внутри интервала — конфликт типа assignment
	res := DetectConflicts(7, date(t, "2025-06-05"), date(t, "2025-06-07"), existing, nil)
	require.True(t, res.HasConflict)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, ConflictTypeAssignment, res.Conflicts[0].Type)
	assert.Equal(t, uint64(101), res.Conflicts[0].AssignmentID)

	// Кандидат в другом месяце — конфликта нет
	res = DetectConflicts(7, date(t, "2025-07-01"), date(t, "2025-07-05"), existing, nil)
	assert.False(t, res.HasConflict)
	assert.Empty(t, res.Conflicts)
}

func TestDetectConflicts_SameDayHandoff(t *testing.T) {
	existing := []entities.ResourceAssignment{
		assignment(5, 1, "2025-06-01", "2025-06-10", constants.AssignmentStatusInProgress, t),
	}

	// Начало нового в день окончания старого — конфликт (закрытые интервалы)
	res := DetectConflicts(1, date(t, "2025-06-10"), date(t, "2025-06-20"), existing, nil)
	assert.True(t, res.HasConflict)

	// Начало на следующий день — конфликта нет
	res = DetectConflicts(1, date(t, "2025-06-11"), date(t, "2025-06-20"), existing, nil)
	assert.False(t, res.HasConflict)
}

func TestDetectConflicts_IgnoresHistoricalAndForeign(t *testing.T) {
	existing := []entities.ResourceAssignment{
		// completed и cancelled — история, в проверке не участвуют
		assignment(1, 1, "2025-06-01", "2025-06-10", constants.AssignmentStatusCompleted, t),
		assignment(2, 1, "2025-06-01", "2025-06-10", constants.AssignmentStatusCancelled, t),
		// Чужой ресурс
		assignment(3, 2, "2025-06-01", "2025-06-10", constants.AssignmentStatusScheduled, t),
	}

	res := DetectConflicts(1, date(t, "2025-06-01"), date(t, "2025-06-10"), existing, nil)
	assert.False(t, res.HasConflict)
}

func TestDetectConflicts_LeaveBlocksAssignment(t *testing.T) {
	// Сценарий из постановки: отпуск 2025-06-15 блокирует бронь на этот день.
	unav := []entities.ResourceAvailability{
		{
			ResourceID:         9,
			Date:               date(t, "2025-06-15"),
			IsAvailable:        false,
			AvailableHours:     0,
			UnavailabilityType: constants.UnavailabilityTypeLeave,
		},
	}

	res := DetectConflicts(9, date(t, "2025-06-15"), date(t, "2025-06-15"), nil, unav)
	require.True(t, res.HasConflict)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, ConflictTypeUnavailability, res.Conflicts[0].Type)
	assert.Equal(t, "2025-06-15", res.Conflicts[0].Date)
	assert.Equal(t, constants.UnavailabilityTypeLeave, res.Conflicts[0].UnavailabilityType)

	// Следующий день свободен
	res = DetectConflicts(9, date(t, "2025-06-16"), date(t, "2025-06-16"), nil, unav)
	assert.False(t, res.HasConflict)
}

func TestDetectConflicts_BothTypesReported(t *testing.T) {
	existing := []entities.ResourceAssignment{
		assignment(42, 3, "2025-06-03", "2025-06-04", constants.AssignmentStatusScheduled, t),
	}
	unav := []entities.ResourceAvailability{
		{ResourceID: 3, Date: date(t, "2025-06-06"), IsAvailable: false, UnavailabilityType: constants.UnavailabilityTypeMaintenance},
	}

	res := DetectConflicts(3, date(t, "2025-06-01"), date(t, "2025-06-07"), existing, unav)
	require.True(t, res.HasConflict)
	require.Len(t, res.Conflicts, 2)
	// Детерминированный порядок: сначала назначения, потом недоступность
	assert.Equal(t, ConflictTypeAssignment, res.Conflicts[0].Type)
	assert.Equal(t, ConflictTypeUnavailability, res.Conflicts[1].Type)
}

func TestDetectConflicts_EmptyDataMeansAvailable(t *testing.T) {
	// Отсутствие данных означает доступность: ни назначений, ни записей —
	// конфликтов нет.
	res := DetectConflicts(1, date(t, "2025-06-01"), date(t, "2025-06-30"), nil, nil)
	assert.False(t, res.HasConflict)
	assert.Empty(t, res.Conflicts)
}

func TestDetectConflicts_AvailableRecordDoesNotBlock(t *testing.T) {
	// Запись с is_available=true (частичное сокращение) бронь не блокирует
	unav := []entities.ResourceAvailability{
		{ResourceID: 1, Date: date(t, "2025-06-02"), IsAvailable: true, AvailableHours: 4, UnavailabilityType: constants.UnavailabilityTypeOther},
	}
	res := DetectConflicts(1, date(t, "2025-06-02"), date(t, "2025-06-02"), nil, unav)
	assert.False(t, res.HasConflict)
}
