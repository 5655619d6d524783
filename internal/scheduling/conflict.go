package scheduling

import (
	"fmt"
	"time"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
	"scheduling-system/pkg/utils"
)

// Типы конфликтов бронирования
const (
	ConflictTypeAssignment     = "assignment"
	ConflictTypeUnavailability = "unavailability"
)

// Conflict — одна причина, по которой бронь невозможна.
type Conflict struct {
	Type string `json:"type"` // assignment | unavailability

	// Для конфликта с другим назначением
	AssignmentID uint64 `json:"assignment_id,omitempty"`
	TargetRef    string `json:"target_ref,omitempty"`

	// Для конфликта с записью недоступности
	Date               string `json:"date,omitempty"`
	UnavailabilityType string `json:"unavailability_type,omitempty"`

	Message string `json:"message"`
}

type ConflictResult struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []Conflict `json:"conflicts"`
}

// RangesOverlap — пересечение двух закрытых интервалов дат:
// [a1,a2] и [b1,b2] пересекаются тогда и только тогда, когда a1<=b2 && b1<=a2.
// Совпадение границ — это пересечение: назначение, заканчивающееся в день
// начала следующего, конфликтует (передача "в тот же день" не разрешена,
// стыковать брони нужно соседними датами).
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// DetectConflicts решает, можно ли занять ресурс на интервал [start, end].
//
// Проверяются два источника конфликтов:
//  1. активные назначения ресурса (scheduled/in_progress), пересекающиеся
//     с кандидатом по закрытым интервалам;
//  2. явные записи недоступности с is_available=false на даты кандидата.
//
// Отсутствие данных означает доступность: по ресурсу без назначений и без
// записей недоступности конфликтов не бывает. Порядок в списке детерминирован:
// сначала конфликты назначений (в порядке входного среза), затем недоступность
// по возрастанию дат.
func DetectConflicts(
	resourceID uint64,
	start, end time.Time,
	assignments []entities.ResourceAssignment,
	unavailability []entities.ResourceAvailability,
) ConflictResult {
	start = utils.TruncateToDay(start)
	end = utils.TruncateToDay(end)

	var conflicts []Conflict

	for _, a := range assignments {
		if a.ResourceID != resourceID {
			continue
		}
		if !constants.IsActiveAssignmentStatus(a.Status) {
			continue
		}
		if RangesOverlap(start, end, utils.TruncateToDay(a.StartDate), utils.TruncateToDay(a.EndDate)) {
			conflicts = append(conflicts, Conflict{
				Type:         ConflictTypeAssignment,
				AssignmentID: a.ID,
				TargetRef:    a.TargetRef,
				Message: fmt.Sprintf("ресурс уже занят с %s по %s",
					utils.FormatDate(a.StartDate), utils.FormatDate(a.EndDate)),
			})
		}
	}

	// Записи недоступности индексируем по дате — на (ресурс, дату) запись одна.
	blocked := make(map[string]entities.ResourceAvailability)
	for _, u := range unavailability {
		if u.ResourceID != resourceID {
			continue
		}
		if !u.IsAvailable {
			blocked[utils.FormatDate(u.Date)] = u
		}
	}

	for _, date := range utils.ExpandDateRange(start, end) {
		key := utils.FormatDate(date)
		if u, ok := blocked[key]; ok {
			conflicts = append(conflicts, Conflict{
				Type:               ConflictTypeUnavailability,
				Date:               key,
				UnavailabilityType: u.UnavailabilityType,
				Message: fmt.Sprintf("ресурс недоступен %s (%s)",
					key, constants.UnavailabilityTypeNames[u.UnavailabilityType]),
			})
		}
	}

	return ConflictResult{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}
