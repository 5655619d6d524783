package constants

// --- ТИПЫ НЕДОСТУПНОСТИ РЕСУРСА ---
const (
	UnavailabilityTypeLeave       = "leave"
	UnavailabilityTypeMaintenance = "maintenance"
	UnavailabilityTypeHoliday     = "holiday"
	UnavailabilityTypeOther       = "other"
)

var UnavailabilityTypeNames = map[string]string{
	UnavailabilityTypeLeave:       "Отпуск",
	UnavailabilityTypeMaintenance: "Техобслуживание",
	UnavailabilityTypeHoliday:     "Праздничный день",
	UnavailabilityTypeOther:       "Прочее",
}

func IsValidUnavailabilityType(code string) bool {
	_, ok := UnavailabilityTypeNames[code]
	return ok
}
