package errors

import "fmt"

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Ресурсы
	ErrResourceNotFound = fmt.Errorf("ресурс не найден")
	ErrResourceInactive = fmt.Errorf("ресурс выведен из эксплуатации и недоступен для новых назначений")
	ErrInvalidResourceType = fmt.Errorf("недопустимый тип ресурса")

	// Бронирование.
	// ErrBookingConflict — гонка при бронировании: конфликт обнаружен повторной
	// проверкой внутри транзакции вставки. Клиент может повторить запрос.
	// Отличается от ошибки валидации (см. InvalidInputError).
	ErrBookingConflict   = fmt.Errorf("ресурс уже занят на выбранные даты, повторите попытку")
	ErrInvalidStatusFlow = fmt.Errorf("недопустимый переход статуса назначения")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
