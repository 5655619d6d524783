package scheduling

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"scheduling-system/pkg/constants"
)

func TestGenerateResourceCode(t *testing.T) {
	assert.Equal(t, "PER0001", GenerateResourceCode(constants.ResourceTypePersonnel, 1))
	assert.Equal(t, "VEH0042", GenerateResourceCode(constants.ResourceTypeVehicle, 42))
	assert.Equal(t, "EQP0007", GenerateResourceCode(constants.ResourceTypeEquipment, 7))
	assert.Equal(t, "FAC1234", GenerateResourceCode(constants.ResourceTypeFacility, 1234))
	// Номер больше ширины паддинга не усекается
	assert.Equal(t, "PER12345", GenerateResourceCode(constants.ResourceTypePersonnel, 12345))
}

func TestGenerateResourceCode_UniquenessAndPrefix(t *testing.T) {
	// Для набора различных номеров одного типа коды попарно различны
	// и каждый начинается с префикса типа.
	seqs := []int{1, 2, 3, 10, 99, 100, 9999}
	seen := make(map[string]bool)
	for _, seq := range seqs {
		code := GenerateResourceCode(constants.ResourceTypeVehicle, seq)
		assert.True(t, strings.HasPrefix(code, "VEH"), "код %s должен начинаться с VEH", code)
		assert.False(t, seen[code], "код %s сгенерирован повторно", code)
		seen[code] = true
	}
}

func TestNextSequence(t *testing.T) {
	codes := []string{"PER0001", "PER0002", "PER0005"}
	assert.Equal(t, 6, NextSequence(codes, constants.ResourceTypePersonnel))

	// Пустой список — начинаем с единицы
	assert.Equal(t, 1, NextSequence(nil, constants.ResourceTypePersonnel))

	// Чужие типы не учитываются
	codes = []string{"VEH0009", "EQP0100"}
	assert.Equal(t, 1, NextSequence(codes, constants.ResourceTypePersonnel))
	assert.Equal(t, 10, NextSequence(codes, constants.ResourceTypeVehicle))

	// Мусорные коды игнорируются
	codes = []string{"PER0003", "PERXXXX", "PER", ""}
	assert.Equal(t, 4, NextSequence(codes, constants.ResourceTypePersonnel))
}

func TestNextSequence_MatchesMaxPlusOne(t *testing.T) {
	seqs := []int{3, 17, 4, 250, 1}
	var codes []string
	for _, s := range seqs {
		codes = append(codes, GenerateResourceCode(constants.ResourceTypeEquipment, s))
	}
	assert.Equal(t, 251, NextSequence(codes, constants.ResourceTypeEquipment),
		fmt.Sprintf("NextSequence по кодам %v должен вернуть max+1", codes))
}

func TestResourceTypePrefixes_Distinct(t *testing.T) {
	// Префиксы типов попарно различны — по коду всегда восстановим тип
	seen := make(map[string]constants.ResourceType)
	for rt, prefix := range constants.ResourceTypePrefixes {
		other, dup := seen[prefix]
		assert.False(t, dup, "префикс %s используется типами %s и %s", prefix, other, rt)
		seen[prefix] = rt
	}
}
