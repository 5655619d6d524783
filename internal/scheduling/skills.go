package scheduling

import (
	"time"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
)

// FilterResourcesBySkills оставляет ресурсы, обладающие КАЖДЫМ из требуемых
// навыков (семантика И, не ИЛИ). Пустой список требований — фильтр-пустышка,
// возвращается исходный срез без изменений.
func FilterResourcesBySkills(resources []entities.EngineeringResource, requiredSkills []string) []entities.EngineeringResource {
	if len(requiredSkills) == 0 {
		return resources
	}

	var matched []entities.EngineeringResource
	for _, r := range resources {
		if hasAllSkills(r.Skills, requiredSkills) {
			matched = append(matched, r)
		}
	}
	return matched
}

func hasAllSkills(skills []string, required []string) bool {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	for _, req := range required {
		if _, ok := set[req]; !ok {
			return false
		}
	}
	return true
}

// CertificationStatus — чистая функция статуса сертификата от текущей даты.
// Без даты истечения сертификат бессрочный (valid). Истёкший — expired,
// истекающий в пределах 30 дней — expiring_soon, иначе valid.
func CertificationStatus(cert entities.Certification, today time.Time) string {
	if !cert.ExpiresAt.Valid {
		return constants.CertStatusValid
	}

	expiry := cert.ExpiresAt.Time
	if expiry.Before(today) {
		return constants.CertStatusExpired
	}
	if !expiry.After(today.AddDate(0, 0, constants.CertExpiryWarningDays)) {
		return constants.CertStatusExpiringSoon
	}
	return constants.CertStatusValid
}
