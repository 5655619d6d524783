package scheduling

import (
	"time"

	"github.com/aarondl/null/v8"

	"scheduling-system/pkg/constants"
)

// FieldError — одна ошибка валидации, привязанная к полю формы.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors"`
}

// AssignmentInput — входные данные запроса на бронирование ресурса.
type AssignmentInput struct {
	ResourceID   uint64
	TargetRef    string
	StartDate    time.Time
	EndDate      time.Time
	PlannedHours null.Float64
}

// UnavailabilityInput — входные данные запроса на отметку недоступности.
type UnavailabilityInput struct {
	ResourceID     uint64
	Dates          []time.Time
	IsAvailable    bool
	AvailableHours float64
	Type           string
}

// ValidateAssignmentInput проверяет структуру запроса на бронирование.
// Ошибки накапливаются по всем полям сразу (без короткого замыкания),
// чтобы форма могла показать их одним списком. Функция чистая, никаких
// обращений к БД.
func ValidateAssignmentInput(in AssignmentInput) ValidationResult {
	var errs []FieldError

	if in.ResourceID == 0 {
		errs = append(errs, FieldError{Field: "resource_id", Message: "ресурс обязателен"})
	}
	if in.TargetRef == "" {
		errs = append(errs, FieldError{Field: "target_ref", Message: "объект работ обязателен"})
	}
	if in.StartDate.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Message: "дата начала обязательна"})
	}
	if in.EndDate.IsZero() {
		errs = append(errs, FieldError{Field: "end_date", Message: "дата окончания обязательна"})
	} else if !in.StartDate.IsZero() && in.EndDate.Before(in.StartDate) {
		errs = append(errs, FieldError{Field: "end_date", Message: "дата окончания не может быть раньше даты начала"})
	}
	if in.PlannedHours.Valid && in.PlannedHours.Float64 < 0 {
		errs = append(errs, FieldError{Field: "planned_hours", Message: "плановые часы не могут быть отрицательными"})
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateUnavailabilityInput проверяет структуру запроса на недоступность.
func ValidateUnavailabilityInput(in UnavailabilityInput) ValidationResult {
	var errs []FieldError

	if in.ResourceID == 0 {
		errs = append(errs, FieldError{Field: "resource_id", Message: "ресурс обязателен"})
	}
	if len(in.Dates) == 0 {
		errs = append(errs, FieldError{Field: "dates", Message: "нужно указать хотя бы одну дату"})
	}
	if !constants.IsValidUnavailabilityType(in.Type) {
		errs = append(errs, FieldError{Field: "unavailability_type", Message: "недопустимый тип недоступности"})
	}
	if in.AvailableHours < 0 {
		errs = append(errs, FieldError{Field: "available_hours", Message: "доступные часы не могут быть отрицательными"})
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
