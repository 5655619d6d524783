package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"scheduling-system/pkg/constants"
	"scheduling-system/pkg/utils"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("calendar_date", isCalendarDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("resource_type", isResourceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("assignment_status", isAssignmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("unavailability_type", isUnavailabilityType); err != nil {
		return err
	}
	return nil
}

// isCalendarDate - дата вида "2025-06-01"
func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(utils.DateLayout, fl.Field().String())
	return err == nil
}

// isResourceType - значение из закрытого набора типов ресурсов
func isResourceType(fl validator.FieldLevel) bool {
	return constants.IsValidResourceType(fl.Field().String())
}

func isAssignmentStatus(fl validator.FieldLevel) bool {
	return constants.IsValidAssignmentStatus(fl.Field().String())
}

func isUnavailabilityType(fl validator.FieldLevel) bool {
	return constants.IsValidUnavailabilityType(fl.Field().String())
}
