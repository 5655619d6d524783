package controllers

import (
	"errors"
	"net/http"

	apperrors "scheduling-system/pkg/errors"
)

// mapResourceError переводит доменные ошибки в HTTP-коды. Ошибки, уже
// несущие код (*HttpError), пропускаются как есть.
func mapResourceError(err error) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return apperrors.NewHttpError(http.StatusBadRequest, invalidInput.Message, err, nil)
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewHttpError(http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, apperrors.ErrInvalidResourceType):
		return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, apperrors.ErrResourceInactive):
		return apperrors.NewHttpError(http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, apperrors.ErrBookingConflict):
		return apperrors.NewHttpError(http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, apperrors.ErrInvalidStatusFlow):
		return apperrors.NewHttpError(http.StatusConflict, err.Error(), nil, nil)
	}
	return err
}
