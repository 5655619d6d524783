package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduling-system/internal/dto"
	"scheduling-system/internal/services"
	apperrors "scheduling-system/pkg/errors"
	"scheduling-system/pkg/utils"
)

type ResourceController struct {
	service  services.ResourceServiceInterface
	importer services.ResourceImporterInterface
	logger   *zap.Logger
}

func NewResourceController(
	service services.ResourceServiceInterface,
	importer services.ResourceImporterInterface,
	logger *zap.Logger,
) *ResourceController {
	return &ResourceController{service: service, importer: importer, logger: logger}
}

func parseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат идентификатора", err, nil)
	}
	return id, nil
}

func (ctrl *ResourceController) GetResources(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	resources, total, err := ctrl.service.GetResources(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, resources, "Список ресурсов", http.StatusOK, total)
}

func (ctrl *ResourceController) FindResource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resource, err := ctrl.service.FindResource(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, resource, "Ресурс найден", http.StatusOK)
}

func (ctrl *ResourceController) CreateResource(c echo.Context) error {
	var payload dto.CreateResourceDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resource, err := ctrl.service.CreateResource(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, resource, "Ресурс создан", http.StatusCreated)
}

func (ctrl *ResourceController) UpdateResource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateResourceDTO
	if err = c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err = c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resource, err := ctrl.service.UpdateResource(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, resource, "Ресурс обновлён", http.StatusOK)
}

func (ctrl *ResourceController) RetireResource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err = ctrl.service.RetireResource(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Ресурс выведен из эксплуатации", http.StatusOK)
}

// SearchResources — подбор исполнителей: активные ресурсы, обладающие каждым
// из требуемых навыков.
func (ctrl *ResourceController) SearchResources(c echo.Context) error {
	var payload dto.SearchResourcesDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resources, err := ctrl.service.SearchResources(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, resources, "Подходящие ресурсы", http.StatusOK)
}

func (ctrl *ResourceController) AddCertification(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateCertificationDTO
	if err = c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err = c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	cert, err := ctrl.service.AddCertification(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, cert, "Сертификат добавлен", http.StatusCreated)
}

// ImportResources принимает xlsx-файл (multipart-поле "file") и создаёт
// ресурсы пачкой.
func (ctrl *ResourceController) ImportResources(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Файл не передан (ожидается поле 'file')", err, nil), ctrl.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось открыть файл", err, nil), ctrl.logger)
	}
	defer file.Close()

	result, err := ctrl.importer.ImportFromXLSX(c.Request().Context(), file)
	if err != nil {
		return utils.ErrorResponse(c, mapResourceError(err), ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Импорт завершён", http.StatusOK)
}
