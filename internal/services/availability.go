package services

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"scheduling-system/internal/dto"
	"scheduling-system/internal/entities"
	"scheduling-system/internal/repositories"
	"scheduling-system/internal/scheduling"
	apperrors "scheduling-system/pkg/errors"
	"scheduling-system/pkg/utils"
)

type AvailabilityServiceInterface interface {
	SetUnavailability(ctx context.Context, payload dto.SetUnavailabilityDTO) ([]dto.AvailabilityRecordDTO, error)
	ClearUnavailability(ctx context.Context, payload dto.ClearUnavailabilityDTO) (int64, error)
	GetAvailability(ctx context.Context, resourceID uint64, fromStr, toStr string) ([]dto.AvailabilityRecordDTO, error)
	CheckDay(ctx context.Context, resourceID uint64, dateStr string) (*scheduling.DayAvailability, error)
}

type AvailabilityService struct {
	storage          *pgxpool.Pool
	availabilityRepo repositories.AvailabilityRepositoryInterface
	assignmentRepo   repositories.AssignmentRepositoryInterface
	resourceRepo     repositories.ResourceRepositoryInterface
	logger           *zap.Logger
}

func NewAvailabilityService(
	storage *pgxpool.Pool,
	availabilityRepo repositories.AvailabilityRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	resourceRepo repositories.ResourceRepositoryInterface,
	logger *zap.Logger,
) AvailabilityServiceInterface {
	return &AvailabilityService{
		storage:          storage,
		availabilityRepo: availabilityRepo,
		assignmentRepo:   assignmentRepo,
		resourceRepo:     resourceRepo,
		logger:           logger,
	}
}

func mapAvailabilityToDTO(rec entities.ResourceAvailability) dto.AvailabilityRecordDTO {
	return dto.AvailabilityRecordDTO{
		ID:                 rec.ID,
		ResourceID:         rec.ResourceID,
		Date:               utils.FormatDate(rec.Date),
		IsAvailable:        rec.IsAvailable,
		AvailableHours:     rec.AvailableHours,
		UnavailabilityType: rec.UnavailabilityType,
		Note:               rec.Note,
	}
}

// SetUnavailability ставит отметки недоступности на список дат.
// Повторная отметка той же даты перезаписывает существующую запись:
// на пару (ресурс, дата) запись всегда одна.
func (s *AvailabilityService) SetUnavailability(ctx context.Context, payload dto.SetUnavailabilityDTO) ([]dto.AvailabilityRecordDTO, error) {
	dates, err := s.parseDates(payload.Dates)
	if err != nil {
		return nil, err
	}

	input := scheduling.UnavailabilityInput{
		ResourceID:     payload.ResourceID,
		Dates:          dates,
		IsAvailable:    payload.IsAvailable,
		AvailableHours: payload.AvailableHours,
		Type:           payload.UnavailabilityType,
	}
	if result := scheduling.ValidateUnavailabilityInput(input); !result.IsValid {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Ошибка валидации запроса на недоступность", nil, nil).
			WithDetails(result.Errors)
	}

	if _, err = s.resourceRepo.FindResource(ctx, payload.ResourceID); err != nil {
		return nil, err
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		for _, date := range dates {
			rec := entities.ResourceAvailability{
				ResourceID:         payload.ResourceID,
				Date:               date,
				IsAvailable:        payload.IsAvailable,
				AvailableHours:     payload.AvailableHours,
				UnavailabilityType: payload.UnavailabilityType,
				Note:               payload.Note,
			}
			if err := s.availabilityRepo.Upsert(ctx, tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("не удалось сохранить отметки недоступности",
			zap.Uint64("resource_id", payload.ResourceID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("отметки недоступности сохранены",
		zap.Uint64("resource_id", payload.ResourceID),
		zap.Int("dates", len(dates)),
		zap.String("unavailability_type", payload.UnavailabilityType),
	)

	from, to := dateBounds(dates)
	records, err := s.availabilityRepo.GetForResource(ctx, s.storage, payload.ResourceID, from, to)
	if err != nil {
		return nil, err
	}

	list := make([]dto.AvailabilityRecordDTO, 0, len(records))
	for _, rec := range records {
		list = append(list, mapAvailabilityToDTO(rec))
	}
	return list, nil
}

// ClearUnavailability снимает отметки: даты снова доступны по умолчанию.
func (s *AvailabilityService) ClearUnavailability(ctx context.Context, payload dto.ClearUnavailabilityDTO) (int64, error) {
	dates, err := s.parseDates(payload.Dates)
	if err != nil {
		return 0, err
	}

	if _, err = s.resourceRepo.FindResource(ctx, payload.ResourceID); err != nil {
		return 0, err
	}

	removed, err := s.availabilityRepo.Delete(ctx, payload.ResourceID, dates)
	if err != nil {
		return 0, err
	}

	s.logger.Info("отметки недоступности сняты",
		zap.Uint64("resource_id", payload.ResourceID),
		zap.Int64("removed", removed),
	)
	return removed, nil
}

func (s *AvailabilityService) GetAvailability(ctx context.Context, resourceID uint64, fromStr, toStr string) ([]dto.AvailabilityRecordDTO, error) {
	from, to, err := parseWindow(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	if _, err = s.resourceRepo.FindResource(ctx, resourceID); err != nil {
		return nil, err
	}

	records, err := s.availabilityRepo.GetForResource(ctx, s.storage, resourceID, from, to)
	if err != nil {
		return nil, err
	}

	list := make([]dto.AvailabilityRecordDTO, 0, len(records))
	for _, rec := range records {
		list = append(list, mapAvailabilityToDTO(rec))
	}
	return list, nil
}

// CheckDay — сводка доступности ресурса на одну дату: базовые часы,
// занятые часы и остаток.
func (s *AvailabilityService) CheckDay(ctx context.Context, resourceID uint64, dateStr string) (*scheduling.DayAvailability, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}

	res, err := s.resourceRepo.FindResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetActiveAssignmentsForResource(ctx, s.storage, resourceID, date, date)
	if err != nil {
		return nil, err
	}

	unavailability, err := s.availabilityRepo.GetForResource(ctx, s.storage, resourceID, date, date)
	if err != nil {
		return nil, err
	}

	day := scheduling.CheckAvailability(resourceID, date, *res, assignments, unavailability)
	return &day, nil
}

func (s *AvailabilityService) parseDates(dateStrs []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(dateStrs))
	for _, str := range dateStrs {
		date, err := utils.ParseDate(str)
		if err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
		}
		dates = append(dates, date)
	}
	return dates, nil
}

func parseWindow(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := utils.ParseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	to, err := utils.ParseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.NewInvalidInputError("конец окна не может быть раньше начала")
	}
	return from, to, nil
}

func dateBounds(dates []time.Time) (time.Time, time.Time) {
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max
}
