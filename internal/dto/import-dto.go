package dto

// ImportRowError — ошибка обработки одной строки файла импорта.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResultDTO — итог импорта ресурсов из xlsx-файла.
type ImportResultDTO struct {
	BatchID string           `json:"batch_id"`
	Total   int              `json:"total"`
	Created int              `json:"created"`
	Errors  []ImportRowError `json:"errors,omitempty"`

	Resources []ShortResourceDTO `json:"resources,omitempty"`
}
