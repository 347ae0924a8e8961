package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pasale/product-catalog/internal/errors"
)

// APIResponse is the envelope of every JSON body: Data on success, Error otherwise.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error renders an *errors.AppError with its own status and code. Anything
// else is reported as a 500 without leaking the cause.
func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		write(w, http.StatusInternalServerError, failure(errors.ErrCodeInternal, "An unexpected error occurred"))
		return
	}

	body := failure(appErr.Code, appErr.Message)
	if appErr.Detail != "" {
		body.Error.Details = []string{appErr.Detail}
	}

	write(w, appErr.StatusCode, body)
}

// ValidationError renders one message per failed field as a 400.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	body := failure(errors.ErrCodeValidation, "Validation failed")
	for _, fieldErr := range errs {
		body.Error.Details = append(body.Error.Details, validationMessage(fieldErr))
	}

	write(w, http.StatusBadRequest, body)
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", err.Field())
	case "min":
		return fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field %s must be greater than or equal to %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
	}
}

func failure(code, message string) APIResponse {
	return APIResponse{Success: false, Error: &ErrorResponse{Code: code, Message: message}}
}

func write(w http.ResponseWriter, statusCode int, body APIResponse) {
	if err := WriteJson(w, statusCode, body); err != nil {
		slog.Error("Failed to encode response", slog.Int("status", statusCode), slog.String("error", err.Error()))
	}
}
