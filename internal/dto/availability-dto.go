package dto

type SetUnavailabilityDTO struct {
	ResourceID uint64 `json:"resource_id" validate:"required"`
	// Список дат, на которые ставится отметка (одна запись на дату)
	Dates []string `json:"dates" validate:"required,min=1,dive,calendar_date"`

	IsAvailable    bool    `json:"is_available"`
	AvailableHours float64 `json:"available_hours" validate:"gte=0"`

	UnavailabilityType string `json:"unavailability_type" validate:"required,unavailability_type"`
	Note               string `json:"note,omitempty"`
}

type ClearUnavailabilityDTO struct {
	ResourceID uint64   `json:"resource_id" validate:"required"`
	Dates      []string `json:"dates" validate:"required,min=1,dive,calendar_date"`
}

type AvailabilityRecordDTO struct {
	ID                 uint64  `json:"id"`
	ResourceID         uint64  `json:"resource_id"`
	Date               string  `json:"date"`
	IsAvailable        bool    `json:"is_available"`
	AvailableHours     float64 `json:"available_hours"`
	UnavailabilityType string  `json:"unavailability_type"`
	Note               string  `json:"note,omitempty"`
}
