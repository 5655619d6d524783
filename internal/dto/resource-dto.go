package dto

type CreateResourceDTO struct {
	Name          string   `json:"name" validate:"required"`
	ResourceType  string   `json:"resource_type" validate:"required,resource_type"`
	DailyCapacity float64  `json:"daily_capacity" validate:"required,gt=0"`
	Skills        []string `json:"skills" validate:"omitempty,dive,required"`
}

type UpdateResourceDTO struct {
	Name          *string   `json:"name,omitempty"           validate:"omitempty"`
	DailyCapacity *float64  `json:"daily_capacity,omitempty" validate:"omitempty,gt=0"`
	Skills        *[]string `json:"skills,omitempty"         validate:"omitempty"`
	IsAvailable   *bool     `json:"is_available,omitempty"   validate:"omitempty"`
}

type ResourceDTO struct {
	ID            uint64   `json:"id"`
	ResourceCode  string   `json:"resource_code"`
	Name          string   `json:"name"`
	ResourceType  string   `json:"resource_type"`
	DailyCapacity float64  `json:"daily_capacity"`
	Skills        []string `json:"skills"`
	IsAvailable   bool     `json:"is_available"`
	IsActive      bool     `json:"is_active"`

	Certifications []CertificationDTO `json:"certifications,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortResourceDTO struct {
	ID           uint64 `json:"id"`
	ResourceCode string `json:"resource_code"`
	Name         string `json:"name"`
}

type CertificationDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	IssuedAt  string `json:"issued_at,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
	// valid | expiring_soon | expired — вычисляется от текущей даты
	Status string `json:"status"`
}

type CreateCertificationDTO struct {
	Name      string `json:"name" validate:"required"`
	IssuedAt  string `json:"issued_at,omitempty"  validate:"omitempty,calendar_date"`
	ExpiresAt string `json:"expires_at,omitempty" validate:"omitempty,calendar_date"`
}

// SearchResourcesDTO — подбор ресурсов по требуемым навыкам (семантика И).
type SearchResourcesDTO struct {
	ResourceType   string   `json:"resource_type" validate:"omitempty,resource_type"`
	RequiredSkills []string `json:"required_skills" validate:"omitempty,dive,required"`
}
