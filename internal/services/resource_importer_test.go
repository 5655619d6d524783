package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImportRow(t *testing.T) {
	t.Run("валидная строка с навыками", func(t *testing.T) {
		payload, err := parseImportRow([]string{"Иванов И.И.", "personnel", "8", "электрик, высотные работы"})
		require.NoError(t, err)

		assert.Equal(t, "Иванов И.И.", payload.Name)
		assert.Equal(t, "personnel", payload.ResourceType)
		assert.Equal(t, 8.0, payload.DailyCapacity)
		assert.Equal(t, []string{"электрик", "высотные работы"}, payload.Skills)
	})

	t.Run("без колонки навыков", func(t *testing.T) {
		payload, err := parseImportRow([]string{"КамАЗ-5320", "vehicle", "10"})
		require.NoError(t, err)
		assert.Empty(t, payload.Skills)
	})

	t.Run("тип нормализуется к нижнему регистру", func(t *testing.T) {
		payload, err := parseImportRow([]string{"Кран", "Equipment", "12"})
		require.NoError(t, err)
		assert.Equal(t, "equipment", payload.ResourceType)
	})

	t.Run("ёмкость с запятой как десятичным разделителем", func(t *testing.T) {
		payload, err := parseImportRow([]string{"Склад", "facility", "7,5"})
		require.NoError(t, err)
		assert.Equal(t, 7.5, payload.DailyCapacity)
	})

	t.Run("недопустимый тип", func(t *testing.T) {
		_, err := parseImportRow([]string{"Иванов", "робот", "8"})
		assert.Error(t, err)
	})

	t.Run("нулевая и отрицательная ёмкость отклоняются", func(t *testing.T) {
		_, err := parseImportRow([]string{"Иванов", "personnel", "0"})
		assert.Error(t, err)

		_, err = parseImportRow([]string{"Иванов", "personnel", "-4"})
		assert.Error(t, err)
	})

	t.Run("пустое название", func(t *testing.T) {
		_, err := parseImportRow([]string{"   ", "personnel", "8"})
		assert.Error(t, err)
	})

	t.Run("слишком короткая строка", func(t *testing.T) {
		_, err := parseImportRow([]string{"Иванов", "personnel"})
		assert.Error(t, err)
	})
}
