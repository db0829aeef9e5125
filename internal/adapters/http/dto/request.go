package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// MaxBodyBytes is the largest request body the decoders accept (1 MiB).
const MaxBodyBytes = 1 << 20

const (
	msgNotObject   = "Request body must be a JSON object"
	msgInvalidJSON = "Request body must be valid JSON"
	msgTooLarge    = "Request body must not exceed 1MB"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DecodeObject reads the request body as a JSON object. Numbers are kept as
// json.Number. An empty body decodes to an empty object.
func DecodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	raw, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || !atEOF(dec) {
		return nil, bodyError(msgInvalidJSON)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, bodyError(msgNotObject)
	}
	return obj, nil
}

// Decode reads the request body into the struct pointed to by dst. A field
// of the wrong JSON type is reported against that field.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := readBody(w, r)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if raw[0] != '{' {
		return bodyError(msgNotObject)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field,
				fmt.Sprintf("%q must be a %s", typeErr.Field, typeErr.Type.Kind()))
		}
		return bodyError(msgInvalidJSON)
	}
	if !atEOF(dec) {
		return bodyError(msgInvalidJSON)
	}
	return nil
}

// ParseTodoQuery reads the list query string: page and limit fall back to
// their defaults when missing or malformed, while an unparseable completed
// or priority filter is a validation error.
func ParseTodoQuery(q url.Values, defaultLimit, maxLimit int) (todo.Criteria, todo.Page, error) {
	page := todo.ParsePage(q.Get("page"), q.Get("limit"), defaultLimit, maxLimit)

	var (
		criteria todo.Criteria
		fields   []domain.FieldError
	)

	if raw := strings.TrimSpace(q.Get("completed")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "completed",
				Message: `"completed" must be a boolean`,
			})
		} else {
			criteria.Completed = &b
		}
	}

	if raw := strings.TrimSpace(q.Get("priority")); raw != "" {
		p := todo.Priority(raw)
		if !p.IsValid() {
			fields = append(fields, domain.FieldError{
				Field:   "priority",
				Message: `"priority" must be one of [low, medium, high]`,
			})
		} else {
			criteria.Priority = p
		}
	}

	if len(fields) > 0 {
		return todo.Criteria{}, todo.Page{}, &domain.ValidationError{Fields: fields}
	}
	return criteria, page, nil
}

// readBody returns the trimmed body, limited to MaxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, bodyError(msgTooLarge)
		}
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return bytes.TrimSpace(raw), nil
}

func atEOF(dec *json.Decoder) bool {
	_, err := dec.Token()
	return errors.Is(err, io.EOF)
}

func bodyError(message string) error {
	return domain.NewValidationError("body", message)
}
