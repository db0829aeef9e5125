package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Messages used by the error boundary.
const (
	MsgValidationFailed = "Validation failed"
	MsgNotFound         = "Resource not found"
	MsgNotAuthorized    = "Not authorized"
	MsgForbidden        = "Forbidden"
	MsgConflict         = "Resource already exists"
	MsgServerError      = "Server Error"
)

// ErrorResponse is the failure envelope. Errors is present only for
// validation failures.
type ErrorResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []FieldErrorDTO `json:"errors,omitempty"`
}

// FieldErrorDTO is one field-level violation.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse maps err to a status code and failure envelope. Errors
// that do not match a domain sentinel become an opaque 500.
func NewErrorResponse(err error) (int, ErrorResponse) {
	var (
		verr     *domain.ValidationError
		notFound *domain.NotFoundError
		conflict *domain.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		fields := make([]FieldErrorDTO, len(verr.Fields))
		for i, f := range verr.Fields {
			fields[i] = FieldErrorDTO{Field: f.Field, Message: f.Message}
		}
		return http.StatusBadRequest, ErrorResponse{Message: MsgValidationFailed, Errors: fields}
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Message: notFound.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Message: MsgNotFound}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Message: MsgNotAuthorized}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Message: MsgForbidden}
	case errors.As(err, &conflict):
		return http.StatusConflict, ErrorResponse{Message: conflict.Message}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrorResponse{Message: MsgConflict}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: MsgServerError}
	}
}

// WriteError writes the failure envelope for err. Server errors are logged
// with the request logger; their detail never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeEnvelope(w, r, status, resp)
}

// WriteFailure writes a failure envelope with an explicit status and message.
func WriteFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeEnvelope(w, r, status, ErrorResponse{Message: message})
}

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	writeEnvelope(w, r, status, v)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
