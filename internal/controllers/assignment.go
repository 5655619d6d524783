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

type AssignmentController struct {
	service services.AssignmentServiceInterface
	logger  *zap.Logger
}

func NewAssignmentController(service services.AssignmentServiceInterface, logger *zap.Logger) *AssignmentController {
	return &AssignmentController{service: service, logger: logger}
}

func (ctrl *AssignmentController) GetAssignments(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	assignments, total, err := ctrl.service.GetAssignments(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, assignments, "Список назначений", http.StatusOK, total)
}

func (ctrl *AssignmentController) FindAssignment(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	assignment, err := ctrl.service.FindAssignment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, assignment, "Назначение найдено", http.StatusOK)
}

// CreateAssignment — бронирование ресурса. Конфликт с существующими
// назначениями или отметками недоступности возвращает 409 со списком
// причин в теле ответа.
func (ctrl *AssignmentController) CreateAssignment(c echo.Context) error {
	var payload dto.CreateAssignmentDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	assignment, err := ctrl.service.CreateAssignment(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, assignment, "Ресурс забронирован", http.StatusCreated)
}

// CheckConflicts — предпросмотр: какие конфликты возникнут, если занять
// ресурс на эти даты. Ничего не создаёт.
func (ctrl *AssignmentController) CheckConflicts(c echo.Context) error {
	var payload dto.CheckConflictsDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	result, err := ctrl.service.CheckConflicts(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Проверка конфликтов выполнена", http.StatusOK)
}

func (ctrl *AssignmentController) UpdateAssignmentStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateAssignmentStatusDTO
	if err = c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err = c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	assignment, err := ctrl.service.UpdateAssignmentStatus(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, assignment, "Статус назначения обновлён", http.StatusOK)
}
