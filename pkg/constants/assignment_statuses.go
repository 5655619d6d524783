package constants

// --- СТАТУСЫ НАЗНАЧЕНИЙ (Совпадает с кодами в БД) ---
const (
	AssignmentStatusScheduled  = "scheduled"
	AssignmentStatusInProgress = "in_progress"
	AssignmentStatusCompleted  = "completed"
	AssignmentStatusCancelled  = "cancelled"
)

// Активные статусы — участвуют в поиске конфликтов и расчёте загрузки.
// completed/cancelled — история, в проверках не участвуют.
var ActiveAssignmentStatuses = []string{
	AssignmentStatusScheduled,
	AssignmentStatusInProgress,
}

func IsActiveAssignmentStatus(code string) bool {
	for _, s := range ActiveAssignmentStatuses {
		if s == code {
			return true
		}
	}
	return false
}

func IsValidAssignmentStatus(code string) bool {
	switch code {
	case AssignmentStatusScheduled, AssignmentStatusInProgress,
		AssignmentStatusCompleted, AssignmentStatusCancelled:
		return true
	}
	return false
}

// Допустимые переходы статусов. Удаления назначений нет:
// отмена — это переход в cancelled, история сохраняется.
var assignmentStatusFlow = map[string][]string{
	AssignmentStatusScheduled:  {AssignmentStatusInProgress, AssignmentStatusCompleted, AssignmentStatusCancelled},
	AssignmentStatusInProgress: {AssignmentStatusCompleted, AssignmentStatusCancelled},
	AssignmentStatusCompleted:  {},
	AssignmentStatusCancelled:  {},
}

func CanTransitAssignmentStatus(from, to string) bool {
	for _, s := range assignmentStatusFlow[from] {
		if s == to {
			return true
		}
	}
	return false
}
