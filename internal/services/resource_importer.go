package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"scheduling-system/internal/dto"
	"scheduling-system/pkg/constants"
	apperrors "scheduling-system/pkg/errors"
)

// Колонки файла импорта: Название | Тип | Ёмкость (часов/день) | Навыки.
// Навыки перечисляются через запятую.
const importColumns = 4

type ResourceImporterInterface interface {
	ImportFromXLSX(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error)
}

type ResourceImporter struct {
	resourceService ResourceServiceInterface
	logger          *zap.Logger
}

func NewResourceImporter(resourceService ResourceServiceInterface, logger *zap.Logger) ResourceImporterInterface {
	return &ResourceImporter{resourceService: resourceService, logger: logger}
}

// ImportFromXLSX загружает ресурсы пачкой из xlsx-файла. Каждой загрузке
// присваивается batch id для трассировки в логах. Строки обрабатываются
// независимо: ошибка в одной не останавливает остальные, все ошибки
// собираются в отчёт с номерами строк.
func (s *ResourceImporter) ImportFromXLSX(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error) {
	batchID := uuid.New().String()

	book, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("не удалось прочитать xlsx-файл: %v", err)
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewInvalidInputError("в файле нет ни одного листа")
	}

	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("не удалось прочитать лист '%s': %v", sheet, err)
	}
	if len(rows) < 2 {
		return nil, apperrors.NewInvalidInputError("файл пустой: нет строк данных после заголовка")
	}

	s.logger.Info("начат импорт ресурсов",
		zap.String("batch_id", batchID),
		zap.Int("rows", len(rows)-1),
	)

	result := &dto.ImportResultDTO{BatchID: batchID, Total: len(rows) - 1}

	for i, row := range rows[1:] {
		rowNum := i + 2 // нумерация строк в файле, с учётом заголовка

		payload, err := parseImportRow(row)
		if err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}

		created, err := s.resourceService.CreateResource(ctx, *payload)
		if err != nil {
			s.logger.Warn("строка импорта отклонена",
				zap.String("batch_id", batchID),
				zap.Int("row", rowNum),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}

		result.Created++
		result.Resources = append(result.Resources, dto.ShortResourceDTO{
			ID:           created.ID,
			ResourceCode: created.ResourceCode,
			Name:         created.Name,
		})
	}

	s.logger.Info("импорт ресурсов завершён",
		zap.String("batch_id", batchID),
		zap.Int("created", result.Created),
		zap.Int("failed", len(result.Errors)),
	)
	return result, nil
}

func parseImportRow(row []string) (*dto.CreateResourceDTO, error) {
	if len(row) < importColumns-1 {
		return nil, fmt.Errorf("ожидается минимум %d колонки (название, тип, ёмкость)", importColumns-1)
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		return nil, fmt.Errorf("название не заполнено")
	}

	resourceType := strings.TrimSpace(strings.ToLower(row[1]))
	if !constants.IsValidResourceType(resourceType) {
		return nil, fmt.Errorf("недопустимый тип ресурса '%s'", row[1])
	}

	capacity, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(row[2], ",", ".")), 64)
	if err != nil || capacity <= 0 {
		return nil, fmt.Errorf("ёмкость должна быть положительным числом, получено '%s'", row[2])
	}

	var skills []string
	if len(row) >= importColumns {
		for _, s := range strings.Split(row[3], ",") {
			if skill := strings.TrimSpace(s); skill != "" {
				skills = append(skills, skill)
			}
		}
	}

	return &dto.CreateResourceDTO{
		Name:          name,
		ResourceType:  resourceType,
		DailyCapacity: capacity,
		Skills:        skills,
	}, nil
}
