package todo

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

var validateNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func requireValidationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, domain.ErrValidation) = false")
	}
	return ve
}

func TestValidate_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]any
		wantFields map[string]string
	}{
		{
			name:       "missing title",
			payload:    map[string]any{},
			wantFields: map[string]string{"title": "Title is required"},
		},
		{
			name:       "blank title after trim",
			payload:    map[string]any{"title": "   "},
			wantFields: map[string]string{"title": "Title cannot be empty"},
		},
		{
			name:       "title too long",
			payload:    map[string]any{"title": strings.Repeat("a", 101)},
			wantFields: map[string]string{"title": "Title cannot be more than 100 characters"},
		},
		{
			name:       "title is not a string",
			payload:    map[string]any{"title": json.Number("7")},
			wantFields: map[string]string{"title": `"title" must be a string`},
		},
		{
			name:       "unknown priority",
			payload:    map[string]any{"title": "x", "priority": "urgent"},
			wantFields: map[string]string{"priority": `"priority" must be one of [low, medium, high]`},
		},
		{
			name:       "due date in the past",
			payload:    map[string]any{"title": "x", "dueDate": "2020-01-01"},
			wantFields: map[string]string{"dueDate": "Due date must be in the future"},
		},
		{
			name:       "due date unparseable",
			payload:    map[string]any{"title": "x", "dueDate": "next tuesday"},
			wantFields: map[string]string{"dueDate": `"dueDate" must be a valid date`},
		},
		{
			name:       "due date past year 9999",
			payload:    map[string]any{"title": "x", "dueDate": json.Number("99999999999999999")},
			wantFields: map[string]string{"dueDate": `"dueDate" must be a valid date`},
		},
		{
			name:       "due date millis overflow int64",
			payload:    map[string]any{"title": "x", "dueDate": json.Number("1e30")},
			wantFields: map[string]string{"dueDate": `"dueDate" must be a valid date`},
		},
		{
			name:    "empty title and oversized description report both",
			payload: map[string]any{"title": "", "description": strings.Repeat("d", 600)},
			wantFields: map[string]string{
				"title":       "Title cannot be empty",
				"description": "Description cannot be more than 500 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Validate(OpCreate, tt.payload, validateNow)
			ve := requireValidationError(t, err)

			if len(ve.Fields) != len(tt.wantFields) {
				t.Fatalf("got %d field errors %+v, want %d", len(ve.Fields), ve.Fields, len(tt.wantFields))
			}
			for _, fe := range ve.Fields {
				want, ok := tt.wantFields[fe.Field]
				if !ok {
					t.Errorf("unexpected field error %q: %q", fe.Field, fe.Message)
					continue
				}
				if fe.Message != want {
					t.Errorf("field %q message = %q, want %q", fe.Field, fe.Message, want)
				}
			}
		})
	}
}

func TestValidate_CreateNormalizes(t *testing.T) {
	t.Parallel()

	in, err := Validate(OpCreate, map[string]any{
		"title":       "  Buy milk  ",
		"description": "  two litres ",
		"dueDate":     "2030-03-04T05:06:07Z",
		"user":        "someone-else",
		"completed":   true,
	}, validateNow)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if in.Title == nil || *in.Title != "Buy milk" {
		t.Errorf("Title = %v, want trimmed %q", in.Title, "Buy milk")
	}
	if in.Description == nil || *in.Description != "two litres" {
		t.Errorf("Description = %v, want trimmed %q", in.Description, "two litres")
	}
	if in.Priority == nil || *in.Priority != PriorityMedium {
		t.Errorf("Priority = %v, want default %q", in.Priority, PriorityMedium)
	}
	want := time.Date(2030, 3, 4, 5, 6, 7, 0, time.UTC)
	if in.DueDate == nil || !in.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", in.DueDate, want)
	}
	if in.Completed != nil {
		t.Errorf("Completed = %v, want dropped on create", *in.Completed)
	}
}

func TestValidate_CreateAllowsEmptyDescription(t *testing.T) {
	t.Parallel()

	in, err := Validate(OpCreate, map[string]any{"title": "x", "description": ""}, validateNow)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if in.Description == nil || *in.Description != "" {
		t.Errorf("Description = %v, want empty string", in.Description)
	}
}

func TestValidate_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   map[string]any
		wantField string
		wantMsg   string
	}{
		{
			name:      "empty title",
			payload:   map[string]any{"title": ""},
			wantField: "title",
			wantMsg:   `"title" is not allowed to be empty`,
		},
		{
			name:      "completed not boolean",
			payload:   map[string]any{"completed": "yes"},
			wantField: "completed",
			wantMsg:   `"completed" must be a boolean`,
		},
		{
			name:      "completed null",
			payload:   map[string]any{"completed": nil},
			wantField: "completed",
			wantMsg:   `"completed" must be a boolean`,
		},
		{
			name:      "bad priority",
			payload:   map[string]any{"priority": "HIGH"},
			wantField: "priority",
			wantMsg:   `"priority" must be one of [low, medium, high]`,
		},
		{
			name:      "due date past year 9999",
			payload:   map[string]any{"dueDate": float64(253402300800000)},
			wantField: "dueDate",
			wantMsg:   `"dueDate" must be a valid date`,
		},
		{
			name:      "due date offset pushes past year 9999",
			payload:   map[string]any{"dueDate": "9999-12-31T23:00:00-05:00"},
			wantField: "dueDate",
			wantMsg:   `"dueDate" must be a valid date`,
		},
		{
			name:      "description too long",
			payload:   map[string]any{"description": strings.Repeat("d", 501)},
			wantField: "description",
			wantMsg:   `"description" length must be less than or equal to 500 characters long`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Validate(OpUpdate, tt.payload, validateNow)
			ve := requireValidationError(t, err)
			if len(ve.Fields) != 1 {
				t.Fatalf("got %d field errors %+v, want 1", len(ve.Fields), ve.Fields)
			}
			if ve.Fields[0].Field != tt.wantField || ve.Fields[0].Message != tt.wantMsg {
				t.Errorf("field error = %+v, want {%s %s}", ve.Fields[0], tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestValidate_UpdateIsPartial(t *testing.T) {
	t.Parallel()

	in, err := Validate(OpUpdate, map[string]any{
		"completed": "true",
		"dueDate":   "2001-01-01",
		"user":      "intruder",
	}, validateNow)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if in.Title != nil || in.Description != nil || in.Priority != nil {
		t.Errorf("absent fields were set: %+v", in)
	}
	if in.Completed == nil || !*in.Completed {
		t.Errorf("Completed = %v, want true", in.Completed)
	}
	if in.DueDate == nil {
		t.Error("DueDate = nil, want past date accepted on update")
	}
}

func TestValidate_UpdateEmptyPayload(t *testing.T) {
	t.Parallel()

	in, err := Validate(OpUpdate, map[string]any{}, validateNow)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !in.IsEmpty() {
		t.Errorf("Input = %+v, want empty", in)
	}
}

func TestToTime_EpochMillis(t *testing.T) {
	t.Parallel()

	want := time.UnixMilli(1893456000000).UTC()
	for _, raw := range []any{json.Number("1893456000000"), float64(1893456000000), "1893456000000"} {
		got, ok := toTime(raw)
		if !ok {
			t.Errorf("toTime(%v) not ok", raw)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("toTime(%v) = %v, want %v", raw, got, want)
		}
	}
}

func TestToTime_RejectsUnencodable(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{
		float64(1e30),
		float64(-1e30),
		json.Number("99999999999999999"),
		"99999999999999999",
		json.Number("9.3e18"),
	} {
		got, ok := toTime(raw)
		if ok {
			t.Errorf("toTime(%v) = %v, want rejected", raw, got)
		}
	}

	// The last representable instant still encodes.
	last, ok := toTime(float64(253402300799999))
	if !ok {
		t.Fatal("toTime(end of year 9999) not ok")
	}
	if _, err := json.Marshal(last); err != nil {
		t.Errorf("json.Marshal(%v) error = %v", last, err)
	}
}
