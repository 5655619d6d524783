package services

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"scheduling-system/internal/dto"
	"scheduling-system/internal/entities"
	"scheduling-system/internal/repositories"
	"scheduling-system/internal/scheduling"
	"scheduling-system/pkg/constants"
	apperrors "scheduling-system/pkg/errors"
	"scheduling-system/pkg/types"
	"scheduling-system/pkg/utils"
)

type ResourceServiceInterface interface {
	GetResources(ctx context.Context, filter types.Filter) ([]dto.ResourceDTO, uint64, error)
	FindResource(ctx context.Context, id uint64) (*dto.ResourceDTO, error)
	CreateResource(ctx context.Context, payload dto.CreateResourceDTO) (*dto.ResourceDTO, error)
	UpdateResource(ctx context.Context, id uint64, payload dto.UpdateResourceDTO) (*dto.ResourceDTO, error)
	RetireResource(ctx context.Context, id uint64) error
	SearchResources(ctx context.Context, payload dto.SearchResourcesDTO) ([]dto.ResourceDTO, error)
	AddCertification(ctx context.Context, resourceID uint64, payload dto.CreateCertificationDTO) (*dto.CertificationDTO, error)
}

type ResourceService struct {
	storage      *pgxpool.Pool
	resourceRepo repositories.ResourceRepositoryInterface
	logger       *zap.Logger
}

func NewResourceService(
	storage *pgxpool.Pool,
	resourceRepo repositories.ResourceRepositoryInterface,
	logger *zap.Logger,
) ResourceServiceInterface {
	return &ResourceService{
		storage:      storage,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func mapCertificationToDTO(cert entities.Certification, today time.Time) dto.CertificationDTO {
	out := dto.CertificationDTO{
		ID:     cert.ID,
		Name:   cert.Name,
		Status: scheduling.CertificationStatus(cert, today),
	}
	if cert.IssuedAt.Valid {
		out.IssuedAt = utils.FormatDate(cert.IssuedAt.Time)
	}
	if cert.ExpiresAt.Valid {
		out.ExpiresAt = utils.FormatDate(cert.ExpiresAt.Time)
	}
	return out
}

func mapResourceToDTO(res entities.EngineeringResource) dto.ResourceDTO {
	out := dto.ResourceDTO{
		ID:            res.ID,
		ResourceCode:  res.ResourceCode,
		Name:          res.Name,
		ResourceType:  res.ResourceType,
		DailyCapacity: res.DailyCapacity,
		Skills:        res.Skills,
		IsAvailable:   res.IsAvailable,
		IsActive:      res.IsActive,
		CreatedAt:     formatTimestamp(res.CreatedAt),
		UpdatedAt:     formatTimestamp(res.UpdatedAt),
	}

	today := utils.TruncateToDay(time.Now())
	for _, cert := range res.Certifications {
		out.Certifications = append(out.Certifications, mapCertificationToDTO(cert, today))
	}
	return out
}

func mapResourceToShortDTO(res entities.EngineeringResource) dto.ShortResourceDTO {
	return dto.ShortResourceDTO{
		ID:           res.ID,
		ResourceCode: res.ResourceCode,
		Name:         res.Name,
	}
}

func (s *ResourceService) GetResources(ctx context.Context, filter types.Filter) ([]dto.ResourceDTO, uint64, error) {
	resources, total, err := s.resourceRepo.GetResources(ctx, filter)
	if err != nil {
		s.logger.Error("не удалось получить список ресурсов", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.ResourceDTO, 0, len(resources))
	for _, res := range resources {
		list = append(list, mapResourceToDTO(res))
	}
	return list, total, nil
}

func (s *ResourceService) FindResource(ctx context.Context, id uint64) (*dto.ResourceDTO, error) {
	res, err := s.resourceRepo.FindResource(ctx, id)
	if err != nil {
		return nil, err
	}

	certs, err := s.resourceRepo.GetCertifications(ctx, id)
	if err != nil {
		return nil, err
	}
	res.Certifications = certs

	out := mapResourceToDTO(*res)
	return &out, nil
}

// CreateResource создаёт ресурс с автоматически сгенерированным кодом.
// Чтение выданных кодов (с блокировкой) и вставка проходят в одной
// транзакции: конкурентные создания одного типа выстраиваются в очередь
// и не получают одинаковый порядковый номер.
func (s *ResourceService) CreateResource(ctx context.Context, payload dto.CreateResourceDTO) (*dto.ResourceDTO, error) {
	if !constants.IsValidResourceType(payload.ResourceType) {
		return nil, apperrors.ErrInvalidResourceType
	}
	resourceType := constants.ResourceType(payload.ResourceType)

	var createdID uint64
	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		codes, err := s.resourceRepo.GetResourceCodes(ctx, tx, payload.ResourceType)
		if err != nil {
			return err
		}

		seq := scheduling.NextSequence(codes, resourceType)
		code := scheduling.GenerateResourceCode(resourceType, seq)

		createdID, err = s.resourceRepo.CreateResource(ctx, tx, entities.EngineeringResource{
			ResourceCode:  code,
			Name:          payload.Name,
			ResourceType:  payload.ResourceType,
			DailyCapacity: payload.DailyCapacity,
			Skills:        payload.Skills,
			IsAvailable:   true,
			IsActive:      true,
		})
		return err
	})
	if err != nil {
		s.logger.Error("не удалось создать ресурс", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("ресурс создан",
		zap.Uint64("id", createdID),
		zap.String("resource_type", payload.ResourceType),
	)
	return s.FindResource(ctx, createdID)
}

func (s *ResourceService) UpdateResource(ctx context.Context, id uint64, payload dto.UpdateResourceDTO) (*dto.ResourceDTO, error) {
	if err := s.resourceRepo.UpdateResource(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindResource(ctx, id)
}

func (s *ResourceService) RetireResource(ctx context.Context, id uint64) error {
	if err := s.resourceRepo.RetireResource(ctx, id); err != nil {
		return err
	}
	s.logger.Info("ресурс выведен из эксплуатации", zap.Uint64("id", id))
	return nil
}

// SearchResources подбирает активные ресурсы под требуемые навыки
// (ресурс должен обладать каждым навыком из списка).
func (s *ResourceService) SearchResources(ctx context.Context, payload dto.SearchResourcesDTO) ([]dto.ResourceDTO, error) {
	if payload.ResourceType != "" && !constants.IsValidResourceType(payload.ResourceType) {
		return nil, apperrors.ErrInvalidResourceType
	}

	resources, err := s.resourceRepo.GetActiveResources(ctx, payload.ResourceType)
	if err != nil {
		return nil, err
	}

	matched := scheduling.FilterResourcesBySkills(resources, payload.RequiredSkills)

	list := make([]dto.ResourceDTO, 0, len(matched))
	for _, res := range matched {
		list = append(list, mapResourceToDTO(res))
	}
	return list, nil
}

func (s *ResourceService) AddCertification(ctx context.Context, resourceID uint64, payload dto.CreateCertificationDTO) (*dto.CertificationDTO, error) {
	if _, err := s.resourceRepo.FindResource(ctx, resourceID); err != nil {
		return nil, err
	}

	cert := entities.Certification{
		ResourceID: resourceID,
		Name:       payload.Name,
	}
	if payload.IssuedAt != "" {
		issued, err := utils.ParseDate(payload.IssuedAt)
		if err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
		}
		cert.IssuedAt = null.TimeFrom(issued)
	}
	if payload.ExpiresAt != "" {
		expires, err := utils.ParseDate(payload.ExpiresAt)
		if err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
		}
		cert.ExpiresAt = null.TimeFrom(expires)
	}

	id, err := s.resourceRepo.AddCertification(ctx, cert)
	if err != nil {
		s.logger.Error("не удалось добавить сертификат", zap.Uint64("resource_id", resourceID), zap.Error(err))
		return nil, err
	}
	cert.ID = id

	out := mapCertificationToDTO(cert, utils.TruncateToDay(time.Now()))
	return &out, nil
}
