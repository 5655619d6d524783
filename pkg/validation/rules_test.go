package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Date   string `validate:"omitempty,calendar_date"`
	Type   string `validate:"omitempty,resource_type"`
	Status string `validate:"omitempty,assignment_status"`
	Unav   string `validate:"omitempty,unavailability_type"`
}

func TestCustomRules(t *testing.T) {
	cv := New()

	t.Run("валидные значения проходят", func(t *testing.T) {
		assert.NoError(t, cv.Validate(&testPayload{
			Date:   "2025-06-01",
			Type:   "personnel",
			Status: "in_progress",
			Unav:   "maintenance",
		}))
	})

	t.Run("кривая дата отклоняется", func(t *testing.T) {
		assert.Error(t, cv.Validate(&testPayload{Date: "01.06.2025"}))
		assert.Error(t, cv.Validate(&testPayload{Date: "2025-13-40"}))
	})

	t.Run("значения вне закрытых наборов отклоняются", func(t *testing.T) {
		assert.Error(t, cv.Validate(&testPayload{Type: "робот"}))
		assert.Error(t, cv.Validate(&testPayload{Status: "paused"}))
		assert.Error(t, cv.Validate(&testPayload{Unav: "vacation"}))
	})
}
