package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"scheduling-system/internal/dto"
	"scheduling-system/internal/entities"
	"scheduling-system/internal/repositories"
	"scheduling-system/internal/scheduling"
	"scheduling-system/pkg/config"
	"scheduling-system/pkg/utils"
)

type CalendarServiceInterface interface {
	GetResourceCalendar(ctx context.Context, resourceID uint64, fromStr, toStr string) (*dto.ResourceCalendarDTO, error)
	GetResourceUtilization(ctx context.Context, resourceID uint64, fromStr, toStr string) (*dto.UtilizationSummaryDTO, error)
	GetFleetUtilization(ctx context.Context, resourceType, fromStr, toStr string) (*dto.FleetUtilizationDTO, error)
}

type CalendarService struct {
	storage          *pgxpool.Pool
	resourceRepo     repositories.ResourceRepositoryInterface
	assignmentRepo   repositories.AssignmentRepositoryInterface
	availabilityRepo repositories.AvailabilityRepositoryInterface
	cacheRepo        repositories.CacheRepositoryInterface
	cfg              *config.Config
	logger           *zap.Logger
}

func NewCalendarService(
	storage *pgxpool.Pool,
	resourceRepo repositories.ResourceRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	availabilityRepo repositories.AvailabilityRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) CalendarServiceInterface {
	return &CalendarService{
		storage:          storage,
		resourceRepo:     resourceRepo,
		assignmentRepo:   assignmentRepo,
		availabilityRepo: availabilityRepo,
		cacheRepo:        cacheRepo,
		cfg:              cfg,
		logger:           logger,
	}
}

// GetResourceCalendar строит календарную сетку ресурса на окно дат:
// по ячейке на каждую календарную дату, включая выходные.
func (s *CalendarService) GetResourceCalendar(ctx context.Context, resourceID uint64, fromStr, toStr string) (*dto.ResourceCalendarDTO, error) {
	from, to, err := parseWindow(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	res, err := s.resourceRepo.FindResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	assignments, unavailability, err := s.loadWindow(ctx, resourceID, from, to)
	if err != nil {
		return nil, err
	}

	dates := utils.ExpandDateRange(from, to)
	cells := make([]scheduling.CalendarCell, 0, len(dates))
	for _, date := range dates {
		cells = append(cells, scheduling.GenerateCalendarCell(*res, date, assignments, unavailability))
	}

	return &dto.ResourceCalendarDTO{
		Resource: mapResourceToShortDTO(*res),
		From:     utils.FormatDate(from),
		To:       utils.FormatDate(to),
		Cells:    cells,
	}, nil
}

// GetResourceUtilization — агрегированная загрузка ресурса за окно.
// Сводка считается по дням и кешируется в Redis: расчёт по длинным окнам
// и большому числу назначений дорогой, а дашборды опрашивают его часто.
func (s *CalendarService) GetResourceUtilization(ctx context.Context, resourceID uint64, fromStr, toStr string) (*dto.UtilizationSummaryDTO, error) {
	from, to, err := parseWindow(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("utilization:resource:%d:%s:%s", resourceID, utils.FormatDate(from), utils.FormatDate(to))
	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
		var summary dto.UtilizationSummaryDTO
		if err = json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("битая запись в кеше загрузки, пересчитываем", zap.String("key", cacheKey))
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("кеш загрузки недоступен", zap.Error(err))
	}

	res, err := s.resourceRepo.FindResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	summary, err := s.buildSummary(ctx, *res, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		if err = s.cacheRepo.Set(ctx, cacheKey, string(data), s.cfg.Scheduling.UtilizationCacheTTL); err != nil {
			s.logger.Warn("не удалось записать сводку в кеш", zap.Error(err))
		}
	}
	return summary, nil
}

// GetFleetUtilization — сводка по всем активным ресурсам (опционально одного
// типа). Средняя загрузка считается только по ресурсам с ненулевой
// доступностью в окне.
func (s *CalendarService) GetFleetUtilization(ctx context.Context, resourceType, fromStr, toStr string) (*dto.FleetUtilizationDTO, error) {
	from, to, err := parseWindow(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.GetActiveResources(ctx, resourceType)
	if err != nil {
		return nil, err
	}

	out := &dto.FleetUtilizationDTO{
		From:      utils.FormatDate(from),
		To:        utils.FormatDate(to),
		Resources: make([]dto.UtilizationSummaryDTO, 0, len(resources)),
	}

	sum := 0.0
	counted := 0
	for _, res := range resources {
		summary, err := s.buildSummary(ctx, res, from, to)
		if err != nil {
			return nil, err
		}
		out.Resources = append(out.Resources, *summary)

		if summary.AvailableHours > 0 {
			sum += summary.UtilizationPercent
			counted++
		}
	}
	if counted > 0 {
		out.AverageUtilization = sum / float64(counted)
	}
	return out, nil
}

func (s *CalendarService) buildSummary(ctx context.Context, res entities.EngineeringResource, from, to time.Time) (*dto.UtilizationSummaryDTO, error) {
	assignments, unavailability, err := s.loadWindow(ctx, res.ID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &dto.UtilizationSummaryDTO{
		Resource: mapResourceToShortDTO(res),
		From:     utils.FormatDate(from),
		To:       utils.FormatDate(to),
	}

	for _, date := range utils.ExpandDateRange(from, to) {
		day := scheduling.CheckAvailability(res.ID, date, res, assignments, unavailability)
		summary.AvailableHours += day.AvailableHours
		summary.AssignedHours += day.AssignedHours

		pct := scheduling.CalculateUtilization(day.AssignedHours, day.AvailableHours)
		if scheduling.IsOverAllocated(pct) {
			summary.OverAllocatedDays = append(summary.OverAllocatedDays, day.Date)
		}
	}

	summary.RemainingHours = summary.AvailableHours - summary.AssignedHours
	summary.UtilizationPercent = scheduling.CalculateUtilization(summary.AssignedHours, summary.AvailableHours)
	return summary, nil
}

func (s *CalendarService) loadWindow(ctx context.Context, resourceID uint64, from, to time.Time) ([]entities.ResourceAssignment, []entities.ResourceAvailability, error) {
	assignments, err := s.assignmentRepo.GetActiveAssignmentsForResource(ctx, s.storage, resourceID, from, to)
	if err != nil {
		return nil, nil, err
	}

	unavailability, err := s.availabilityRepo.GetForResource(ctx, s.storage, resourceID, from, to)
	if err != nil {
		return nil, nil, err
	}
	return assignments, unavailability, nil
}
