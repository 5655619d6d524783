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

type AssignmentServiceInterface interface {
	GetAssignments(ctx context.Context, filter types.Filter) ([]dto.AssignmentListResponseDTO, uint64, error)
	FindAssignment(ctx context.Context, id uint64) (*dto.AssignmentDTO, error)
	CreateAssignment(ctx context.Context, payload dto.CreateAssignmentDTO) (*dto.AssignmentDTO, error)
	CheckConflicts(ctx context.Context, payload dto.CheckConflictsDTO) (*scheduling.ConflictResult, error)
	UpdateAssignmentStatus(ctx context.Context, id uint64, payload dto.UpdateAssignmentStatusDTO) (*dto.AssignmentDTO, error)
}

type AssignmentService struct {
	storage          *pgxpool.Pool
	assignmentRepo   repositories.AssignmentRepositoryInterface
	resourceRepo     repositories.ResourceRepositoryInterface
	availabilityRepo repositories.AvailabilityRepositoryInterface
	logger           *zap.Logger
}

func NewAssignmentService(
	storage *pgxpool.Pool,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	resourceRepo repositories.ResourceRepositoryInterface,
	availabilityRepo repositories.AvailabilityRepositoryInterface,
	logger *zap.Logger,
) AssignmentServiceInterface {
	return &AssignmentService{
		storage:          storage,
		assignmentRepo:   assignmentRepo,
		resourceRepo:     resourceRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

func mapAssignmentToListDTO(a entities.ResourceAssignment) dto.AssignmentListResponseDTO {
	return dto.AssignmentListResponseDTO{
		ID:           a.ID,
		ResourceID:   a.ResourceID,
		TargetRef:    a.TargetRef,
		StartDate:    utils.FormatDate(a.StartDate),
		EndDate:      utils.FormatDate(a.EndDate),
		PlannedHours: a.PlannedHours.Ptr(),
		Status:       a.Status,
		CreatedAt:    formatTimestamp(a.CreatedAt),
		UpdatedAt:    formatTimestamp(a.UpdatedAt),
	}
}

func mapAssignmentToDTO(a entities.ResourceAssignment, res entities.EngineeringResource) dto.AssignmentDTO {
	return dto.AssignmentDTO{
		ID:           a.ID,
		TargetRef:    a.TargetRef,
		StartDate:    utils.FormatDate(a.StartDate),
		EndDate:      utils.FormatDate(a.EndDate),
		PlannedHours: a.PlannedHours.Ptr(),
		Status:       a.Status,
		Resource:     mapResourceToShortDTO(res),
		CreatedAt:    formatTimestamp(a.CreatedAt),
		UpdatedAt:    formatTimestamp(a.UpdatedAt),
	}
}

func (s *AssignmentService) GetAssignments(ctx context.Context, filter types.Filter) ([]dto.AssignmentListResponseDTO, uint64, error) {
	assignments, total, err := s.assignmentRepo.GetAssignments(ctx, filter)
	if err != nil {
		s.logger.Error("не удалось получить список назначений", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.AssignmentListResponseDTO, 0, len(assignments))
	for _, a := range assignments {
		list = append(list, mapAssignmentToListDTO(a))
	}
	return list, total, nil
}

func (s *AssignmentService) FindAssignment(ctx context.Context, id uint64) (*dto.AssignmentDTO, error) {
	a, err := s.assignmentRepo.FindAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := s.resourceRepo.FindResource(ctx, a.ResourceID)
	if err != nil {
		return nil, err
	}

	out := mapAssignmentToDTO(*a, *res)
	return &out, nil
}

// CreateAssignment бронирует ресурс на закрытый интервал дат.
//
// Порядок строгий: валидация структуры запроса -> быстрая проверка конфликтов
// на снимке данных -> транзакция вставки. Внутри транзакции строка ресурса
// блокируется (FOR UPDATE) и конфликты перепроверяются: два конкурентных
// запроса на пересекающиеся даты не могут пройти оба. Конфликт, всплывший
// только на повторной проверке, означает проигранную гонку — клиенту
// возвращается ErrBookingConflict с предложением повторить.
func (s *AssignmentService) CreateAssignment(ctx context.Context, payload dto.CreateAssignmentDTO) (*dto.AssignmentDTO, error) {
	start, end, err := s.parseDateRange(payload.StartDate, payload.EndDate)
	if err != nil {
		return nil, err
	}

	input := scheduling.AssignmentInput{
		ResourceID:   payload.ResourceID,
		TargetRef:    payload.TargetRef,
		StartDate:    start,
		EndDate:      end,
		PlannedHours: null.Float64FromPtr(payload.PlannedHours),
	}
	if result := scheduling.ValidateAssignmentInput(input); !result.IsValid {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Ошибка валидации запроса на бронирование", nil, nil).
			WithDetails(result.Errors)
	}

	res, err := s.resourceRepo.FindResource(ctx, payload.ResourceID)
	if err != nil {
		return nil, err
	}
	if !res.IsActive {
		return nil, apperrors.ErrResourceInactive
	}
	if !res.IsAvailable {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Ресурс помечен как недоступный для планирования", nil, nil)
	}

	// Быстрый отказ без блокировок: если конфликт виден уже сейчас,
	// транзакция не нужна.
	precheck, err := s.detectConflicts(ctx, s.storage, payload.ResourceID, start, end)
	if err != nil {
		return nil, err
	}
	if precheck.HasConflict {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Ресурс занят на выбранные даты", nil, nil).
			WithDetails(precheck.Conflicts)
	}

	var createdID uint64
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		if _, err := s.resourceRepo.FindResourceForUpdate(ctx, tx, payload.ResourceID); err != nil {
			return err
		}

		recheck, err := s.detectConflicts(ctx, tx, payload.ResourceID, start, end)
		if err != nil {
			return err
		}
		if recheck.HasConflict {
			return apperrors.ErrBookingConflict
		}

		createdID, err = s.assignmentRepo.CreateAssignment(ctx, tx, entities.ResourceAssignment{
			ResourceID:   payload.ResourceID,
			TargetRef:    payload.TargetRef,
			StartDate:    start,
			EndDate:      end,
			PlannedHours: null.Float64FromPtr(payload.PlannedHours),
			Status:       constants.AssignmentStatusScheduled,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("назначение создано",
		zap.Uint64("id", createdID),
		zap.Uint64("resource_id", payload.ResourceID),
		zap.String("target_ref", payload.TargetRef),
		zap.String("start_date", payload.StartDate),
		zap.String("end_date", payload.EndDate),
	)
	return s.FindAssignment(ctx, createdID)
}

// CheckConflicts — предпросмотр конфликтов без создания брони.
func (s *AssignmentService) CheckConflicts(ctx context.Context, payload dto.CheckConflictsDTO) (*scheduling.ConflictResult, error) {
	start, end, err := s.parseDateRange(payload.StartDate, payload.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.NewInvalidInputError("дата окончания не может быть раньше даты начала")
	}

	if _, err := s.resourceRepo.FindResource(ctx, payload.ResourceID); err != nil {
		return nil, err
	}

	return s.detectConflicts(ctx, s.storage, payload.ResourceID, start, end)
}

func (s *AssignmentService) UpdateAssignmentStatus(ctx context.Context, id uint64, payload dto.UpdateAssignmentStatusDTO) (*dto.AssignmentDTO, error) {
	a, err := s.assignmentRepo.FindAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !constants.CanTransitAssignmentStatus(a.Status, payload.Status) {
		return nil, apperrors.ErrInvalidStatusFlow
	}

	if err = s.assignmentRepo.UpdateAssignmentStatus(ctx, id, payload.Status); err != nil {
		return nil, err
	}

	s.logger.Info("статус назначения изменён",
		zap.Uint64("id", id),
		zap.String("from", a.Status),
		zap.String("to", payload.Status),
	)
	return s.FindAssignment(ctx, id)
}

func (s *AssignmentService) parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	end, err := utils.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	return start, end, nil
}

// detectConflicts собирает снимок назначений и недоступности через q
// (пул или транзакция) и прогоняет его через чистый детектор.
func (s *AssignmentService) detectConflicts(ctx context.Context, q repositories.Querier, resourceID uint64, start, end time.Time) (*scheduling.ConflictResult, error) {
	assignments, err := s.assignmentRepo.GetActiveAssignmentsForResource(ctx, q, resourceID, start, end)
	if err != nil {
		return nil, err
	}

	unavailability, err := s.availabilityRepo.GetForResource(ctx, q, resourceID, start, end)
	if err != nil {
		return nil, err
	}

	result := scheduling.DetectConflicts(resourceID, start, end, assignments, unavailability)
	return &result, nil
}
