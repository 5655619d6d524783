package entities

import (
	"github.com/aarondl/null/v8"

	"scheduling-system/pkg/types"
)

// EngineeringResource — планируемая единица: сотрудник, транспорт,
// оборудование или помещение.
type EngineeringResource struct {
	ID           uint64 `json:"id"`
	ResourceCode string `json:"resource_code"` // уникальный, префикс совпадает с типом
	Name         string `json:"name"`
	ResourceType string `json:"resource_type"`

	// Дневная ёмкость в часах, всегда > 0
	DailyCapacity float64 `json:"daily_capacity"`

	Skills []string `json:"skills"`

	IsAvailable bool `json:"is_available"`
	// Неактивный (списанный) ресурс не участвует в новых назначениях,
	// но сохраняет историю старых.
	IsActive bool `json:"is_active"`

	types.BaseEntity // CreatedAt, UpdatedAt

	// Связанные данные (не колонки в таблице)
	Certifications []Certification `json:"certifications,omitempty" db:"-"`
}

// Certification — сертификат/допуск, привязанный к ресурсу.
// Сертификат без даты истечения бессрочный.
type Certification struct {
	ID         uint64    `json:"id"`
	ResourceID uint64    `json:"resource_id"`
	Name       string    `json:"name"`
	IssuedAt   null.Time `json:"issued_at"`
	ExpiresAt  null.Time `json:"expires_at"`
}
