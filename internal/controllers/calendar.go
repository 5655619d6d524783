package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduling-system/internal/services"
	"scheduling-system/pkg/utils"
)

type CalendarController struct {
	service services.CalendarServiceInterface
	logger  *zap.Logger
}

func NewCalendarController(service services.CalendarServiceInterface, logger *zap.Logger) *CalendarController {
	return &CalendarController{service: service, logger: logger}
}

// GetResourceCalendar — календарная сетка ресурса на окно ?from=...&to=...
func (ctrl *CalendarController) GetResourceCalendar(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	calendar, err := ctrl.service.GetResourceCalendar(c.Request().Context(), id, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, calendar, "Календарь ресурса", http.StatusOK)
}

// GetResourceUtilization — сводка загрузки ресурса за окно ?from=...&to=...
func (ctrl *CalendarController) GetResourceUtilization(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	summary, err := ctrl.service.GetResourceUtilization(c.Request().Context(), id, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, summary, "Загрузка ресурса", http.StatusOK)
}

// GetFleetUtilization — сводка по всем активным ресурсам, опционально
// одного типа (?resource_type=personnel).
func (ctrl *CalendarController) GetFleetUtilization(c echo.Context) error {
	summary, err := ctrl.service.GetFleetUtilization(
		c.Request().Context(),
		c.QueryParam("resource_type"),
		c.QueryParam("from"),
		c.QueryParam("to"),
	)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, summary, "Сводка загрузки", http.StatusOK)
}
