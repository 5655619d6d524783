package constants

// --- ТИПЫ РЕСУРСОВ (Закрытый набор, совпадает с кодами в БД) ---

type ResourceType string

const (
	ResourceTypePersonnel ResourceType = "personnel"
	ResourceTypeVehicle   ResourceType = "vehicle"
	ResourceTypeEquipment ResourceType = "equipment"
	ResourceTypeFacility  ResourceType = "facility"
)

// ResourceTypePrefixes — единая таблица "тип -> префикс кода".
// Префиксы фиксированные и попарно различные: по префиксу кода
// всегда можно восстановить тип ресурса.
var ResourceTypePrefixes = map[ResourceType]string{
	ResourceTypePersonnel: "PER",
	ResourceTypeVehicle:   "VEH",
	ResourceTypeEquipment: "EQP",
	ResourceTypeFacility:  "FAC",
}

var ResourceTypeNames = map[ResourceType]string{
	ResourceTypePersonnel: "Персонал",
	ResourceTypeVehicle:   "Транспорт",
	ResourceTypeEquipment: "Оборудование",
	ResourceTypeFacility:  "Помещение",
}

func IsValidResourceType(code string) bool {
	_, ok := ResourceTypePrefixes[ResourceType(code)]
	return ok
}
