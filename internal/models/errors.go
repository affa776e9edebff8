package models

import "fmt"

// ErrorKind - класс ошибки для трансляции в HTTP-статус
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindInternal
)

// Машиночитаемые коды причин для 4xx ответов
const (
	ReasonInvalidCategory    = "invalid_category"
	ReasonInvalidUrgency     = "invalid_urgency"
	ReasonEmptyDescription   = "empty_description"
	ReasonInvalidCoordinates = "invalid_coordinates"
	ReasonInvalidReaction    = "invalid_reaction"
	ReasonMissingIdentityKey = "missing_identity_key"
	ReasonInvalidHoursWindow = "invalid_hours_window"
	ReasonMissingSessionID   = "missing_session_id"
	ReasonEmptyAddress       = "empty_address"
	ReasonEmptyMessage       = "empty_message"
	ReasonIncidentNotFound   = "incident_not_found"
	ReasonRecordNotFound     = "record_not_found"
)

// AppError - ошибка уровня сервиса с машиночитаемым кодом причины.
// Валидация выполняется один раз на границе сервиса, внутренние компоненты
// считают вход уже проверенным.
type AppError struct {
	Kind    ErrorKind
	Reason  string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// NewValidationError создает ошибку валидации с кодом причины
func NewValidationError(reason, message string) *AppError {
	return &AppError{Kind: KindValidation, Reason: reason, Message: message}
}

// NewNotFoundError создает ошибку отсутствия записи
func NewNotFoundError(reason, message string) *AppError {
	return &AppError{Kind: KindNotFound, Reason: reason, Message: message}
}
