package dto

import "scheduling-system/internal/scheduling"

// ResourceCalendarDTO — календарная сетка одного ресурса на окно дат.
type ResourceCalendarDTO struct {
	Resource ShortResourceDTO          `json:"resource"`
	From     string                    `json:"from"`
	To       string                    `json:"to"`
	Cells    []scheduling.CalendarCell `json:"cells"`
}

// UtilizationSummaryDTO — агрегированная загрузка ресурса за окно дат.
type UtilizationSummaryDTO struct {
	Resource           ShortResourceDTO `json:"resource"`
	From               string           `json:"from"`
	To                 string           `json:"to"`
	AvailableHours     float64          `json:"available_hours"`
	AssignedHours      float64          `json:"assigned_hours"`
	RemainingHours     float64          `json:"remaining_hours"`
	UtilizationPercent float64          `json:"utilization_percent"`
	OverAllocatedDays  []string         `json:"over_allocated_days,omitempty"`
}

// FleetUtilizationDTO — сводка по всем активным ресурсам за окно дат.
type FleetUtilizationDTO struct {
	From      string                  `json:"from"`
	To        string                  `json:"to"`
	Resources []UtilizationSummaryDTO `json:"resources"`
	// Средняя загрузка по ресурсам с ненулевой доступностью
	AverageUtilization float64 `json:"average_utilization"`
}
