package entities

import (
	"time"

	"scheduling-system/pkg/types"
)

// ResourceAvailability — явная запись о недоступности (или сокращённой
// доступности) ресурса на конкретную дату. На пару (ресурс, дата) — не больше
// одной записи.
//
// ВАЖНО: отсутствие записи означает, что ресурс доступен на полную дневную
// ёмкость (с поправкой на календарь — выходные нерабочие). Календарь
// недоступности разреженный, заполнять его "доступными" днями не нужно.
type ResourceAvailability struct {
	ID         uint64    `json:"id"`
	ResourceID uint64    `json:"resource_id"`
	Date       time.Time `json:"date"`

	IsAvailable bool `json:"is_available"`
	// Доступные часы на эту дату (может быть 0 или частичное сокращение)
	AvailableHours float64 `json:"available_hours"`

	// leave | maintenance | holiday | other
	UnavailabilityType string `json:"unavailability_type"`
	Note               string `json:"note"`

	types.BaseEntity
}
