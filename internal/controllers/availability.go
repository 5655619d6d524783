package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduling-system/internal/dto"
	"scheduling-system/internal/services"
	apperrors "scheduling-system/pkg/errors"
	"scheduling-system/pkg/utils"
)

type AvailabilityController struct {
	service services.AvailabilityServiceInterface
	logger  *zap.Logger
}

func NewAvailabilityController(service services.AvailabilityServiceInterface, logger *zap.Logger) *AvailabilityController {
	return &AvailabilityController{service: service, logger: logger}
}

// SetUnavailability ставит отметки недоступности (отпуск, обслуживание,
// праздник) на список дат. Повторная отметка даты перезаписывает старую.
func (ctrl *AvailabilityController) SetUnavailability(c echo.Context) error {
	var payload dto.SetUnavailabilityDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	records, err := ctrl.service.SetUnavailability(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, records, "Отметки недоступности сохранены", http.StatusOK)
}

func (ctrl *AvailabilityController) ClearUnavailability(c echo.Context) error {
	var payload dto.ClearUnavailabilityDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	removed, err := ctrl.service.ClearUnavailability(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"removed": removed}, "Отметки недоступности сняты", http.StatusOK)
}

// GetAvailability возвращает явные записи недоступности ресурса в окне
// ?from=...&to=... Даты без записей доступны по умолчанию.
func (ctrl *AvailabilityController) GetAvailability(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	records, err := ctrl.service.GetAvailability(c.Request().Context(), id, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, records, "Записи недоступности", http.StatusOK)
}

// CheckDay — сводка на одну дату (?date=...): доступные, занятые и
// оставшиеся часы ресурса.
func (ctrl *AvailabilityController) CheckDay(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	day, err := ctrl.service.CheckDay(c.Request().Context(), id, c.QueryParam("date"))
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, day, "Доступность на дату", http.StatusOK)
}
