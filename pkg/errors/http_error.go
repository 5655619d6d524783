package errors

// HttpError — ошибка с HTTP-кодом и пользовательским сообщением.
// Message уходит клиенту, Err и Context — только в логи.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

// WithDetails прикрепляет структурированные детали (например, список конфликтов),
// которые нужно показать клиенту в теле ответа.
func (e *HttpError) WithDetails(details interface{}) *HttpError {
	e.Details = details
	return e
}
