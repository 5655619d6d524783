package dto

type CreateAssignmentDTO struct {
	ResourceID uint64 `json:"resource_id" validate:"required"`
	TargetRef  string `json:"target_ref" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,calendar_date"`
	EndDate    string `json:"end_date" validate:"required,calendar_date"`
	// Если не заданы — считаются от дневной ёмкости по рабочим дням
	PlannedHours *float64 `json:"planned_hours,omitempty" validate:"omitempty,gte=0"`
}

type UpdateAssignmentStatusDTO struct {
	Status string `json:"status" validate:"required,assignment_status"`
}

type AssignmentDTO struct {
	ID           uint64   `json:"id"`
	TargetRef    string   `json:"target_ref"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	PlannedHours *float64 `json:"planned_hours,omitempty"`
	Status       string   `json:"status"`

	Resource ShortResourceDTO `json:"resource"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type AssignmentListResponseDTO struct {
	ID           uint64   `json:"id"`
	ResourceID   uint64   `json:"resource_id"`
	TargetRef    string   `json:"target_ref"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	PlannedHours *float64 `json:"planned_hours,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// CheckConflictsDTO — проверка конфликтов без создания брони (предпросмотр).
type CheckConflictsDTO struct {
	ResourceID uint64 `json:"resource_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,calendar_date"`
	EndDate    string `json:"end_date" validate:"required,calendar_date"`
}
