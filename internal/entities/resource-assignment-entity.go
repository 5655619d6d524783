package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"scheduling-system/pkg/types"
)

// ResourceAssignment — бронь ресурса на закрытый интервал дат [StartDate, EndDate].
// Назначения никогда не удаляются физически: отмена — это переход в статус
// cancelled, история сохраняется для аудита.
type ResourceAssignment struct {
	ID         uint64 `json:"id"`
	ResourceID uint64 `json:"resource_id"`

	// Ссылка на объект работ (проект/заявка/задача) — для планировщика это
	// непрозрачный идентификатор.
	TargetRef string `json:"target_ref"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"` // включительно, EndDate >= StartDate

	// Плановые часы на весь интервал. Если не заданы, считаются
	// от дневной ёмкости ресурса по рабочим дням.
	PlannedHours null.Float64 `json:"planned_hours"`

	// scheduled | in_progress | completed | cancelled
	Status string `json:"status"`

	types.BaseEntity

	// Связанные данные (не колонки в таблице)
	Resource *EngineeringResource `json:"resource,omitempty" db:"-"`
}

// CoversDate — входит ли календарная дата в интервал назначения.
func (a *ResourceAssignment) CoversDate(date time.Time) bool {
	return !date.Before(a.StartDate) && !date.After(a.EndDate)
}
