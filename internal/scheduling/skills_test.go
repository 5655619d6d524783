package scheduling

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
)

func TestFilterResourcesBySkills_ANDSemantics(t *testing.T) {
	resources := []entities.EngineeringResource{
		{ID: 1, Name: "Сварщик", Skills: []string{"welding", "rigging"}},
		{ID: 2, Name: "Крановщик", Skills: []string{"crane", "rigging"}},
		{ID: 3, Name: "Универсал", Skills: []string{"welding", "rigging", "crane"}},
		{ID: 4, Name: "Без навыков", Skills: nil},
	}

	// Требуются ОБА навыка — проходит только тот, у кого есть каждый
	matched := FilterResourcesBySkills(resources, []string{"welding", "rigging"})
	require.Len(t, matched, 2)
	assert.Equal(t, uint64(1), matched[0].ID)
	assert.Equal(t, uint64(3), matched[1].ID)

	// Один навык
	matched = FilterResourcesBySkills(resources, []string{"crane"})
	require.Len(t, matched, 2)

	// Навык, которого нет ни у кого
	matched = FilterResourcesBySkills(resources, []string{"diving"})
	assert.Empty(t, matched)
}

func TestFilterResourcesBySkills_EmptyRequirementIsNoop(t *testing.T) {
	resources := []entities.EngineeringResource{
		{ID: 1, Skills: []string{"welding"}},
		{ID: 2, Skills: nil},
	}

	// Пустой список требований возвращает исходный набор без изменений
	matched := FilterResourcesBySkills(resources, nil)
	assert.Equal(t, resources, matched)

	matched = FilterResourcesBySkills(resources, []string{})
	assert.Equal(t, resources, matched)
}

func TestCertificationStatus(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Без даты истечения — бессрочный
	cert := entities.Certification{Name: "Допуск к высотным работам"}
	assert.Equal(t, constants.CertStatusValid, CertificationStatus(cert, today))

	// Истёк вчера
	cert.ExpiresAt = null.TimeFrom(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, constants.CertStatusExpired, CertificationStatus(cert, today))

	// Истекает через 10 дней — предупреждение
	cert.ExpiresAt = null.TimeFrom(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, constants.CertStatusExpiringSoon, CertificationStatus(cert, today))

	// Ровно на границе 30-дневного горизонта — ещё expiring_soon
	cert.ExpiresAt = null.TimeFrom(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, constants.CertStatusExpiringSoon, CertificationStatus(cert, today))

	// За пределами горизонта — valid
	cert.ExpiresAt = null.TimeFrom(time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, constants.CertStatusValid, CertificationStatus(cert, today))
}
