package errors

import "net/http"

// Error code constants. Errors carry code + params; backend logs are
// always English, the editor frontend translates codes.

// Template error codes.
const (
	CodeTemplateNotFound    = "TEMPLATE_NOT_FOUND"
	CodeTemplateNotDraft    = "TEMPLATE_NOT_DRAFT"
	CodeTemplateNotActive   = "TEMPLATE_NOT_ACTIVE"
	CodeTemplateCodeExists  = "TEMPLATE_CODE_EXISTS"
	CodeInvalidTransition   = "INVALID_STATUS_TRANSITION"
	CodeExclusivityRace     = "ACTIVATION_EXCLUSIVITY_RACE"
	CodeActiveSiblingExists = "ACTIVE_TEMPLATE_EXISTS_FOR_PRODUCT"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrTemplateNotFoundf creates a template not found error.
func ErrTemplateNotFoundf(templateID int) *AppError {
	return (&AppError{
		Code:       CodeTemplateNotFound,
		Message:    "process template not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"template_id": templateID})
}

// ErrTemplateNotDraftf creates a conflict error for mutations against a
// template that has left DRAFT.
func ErrTemplateNotDraftf(templateID int, status string) *AppError {
	return (&AppError{
		Code:       CodeTemplateNotDraft,
		Message:    "only DRAFT templates may be modified or deleted",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"template_id": templateID, "status": status})
}

// ErrInvalidTransitionf creates a conflict error for a lifecycle transition
// the status machine does not allow.
func ErrInvalidTransitionf(templateID int, from, to string) *AppError {
	return (&AppError{
		Code:       CodeInvalidTransition,
		Message:    "status transition is not allowed",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"template_id": templateID, "from": from, "to": to})
}

// ErrValidationFailedf creates a 400 error carrying field-level details.
func ErrValidationFailedf(fieldErrors []FieldError) *AppError {
	return (&AppError{
		Code:       CodeValidationFailed,
		Message:    "request validation failed",
		HTTPStatus: http.StatusBadRequest,
	}).WithFieldErrors(fieldErrors)
}
