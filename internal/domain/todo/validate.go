package todo

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Operation selects the rule set a payload is validated against.
type Operation int

const (
	OpCreate Operation = iota
	OpUpdate
)

// String implements fmt.Stringer.
func (op Operation) String() string {
	if op == OpCreate {
		return "create"
	}
	return "update"
}

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindDate
)

// Violation codes used to look up messages.
const (
	codeRequired = "required"
	codeEmpty    = "empty"
	codeMax      = "max"
	codeType     = "type"
	codeOneOf    = "one_of"
	codeFuture   = "future"
)

// fieldRule declares the constraints for one payload field.
type fieldRule struct {
	field      string
	kind       valueKind
	required   bool
	trim       bool
	allowEmpty bool
	maxLen     int
	oneOf      []string
	fallback   string
	futureOnly bool
	messages   map[string]string
}

var createRules = []fieldRule{
	{
		field:    "title",
		kind:     kindString,
		required: true,
		trim:     true,
		maxLen:   maxTitleLen,
		messages: map[string]string{
			codeRequired: "Title is required",
			codeEmpty:    "Title cannot be empty",
			codeMax:      "Title cannot be more than 100 characters",
		},
	},
	{
		field:      "description",
		kind:       kindString,
		trim:       true,
		allowEmpty: true,
		maxLen:     maxDescriptionLen,
		messages: map[string]string{
			codeMax: "Description cannot be more than 500 characters",
		},
	},
	{
		field:    "priority",
		kind:     kindString,
		oneOf:    priorityValues,
		fallback: string(PriorityMedium),
	},
	{
		field:      "dueDate",
		kind:       kindDate,
		futureOnly: true,
		messages: map[string]string{
			codeFuture: "Due date must be in the future",
		},
	},
}

var updateRules = []fieldRule{
	{field: "title", kind: kindString, trim: true, maxLen: maxTitleLen},
	{field: "description", kind: kindString, trim: true, allowEmpty: true, maxLen: maxDescriptionLen},
	{field: "completed", kind: kindBool},
	{field: "priority", kind: kindString, oneOf: priorityValues},
	{field: "dueDate", kind: kindDate},
}

// Validate checks a raw decoded JSON object against the rules for op and
// returns the normalized input: strings trimmed, defaults applied, and every
// field without a rule dropped. All violations are collected in one pass and
// returned together as a *domain.ValidationError.
//
// now is the instant future-date rules compare against.
func Validate(op Operation, payload map[string]any, now time.Time) (Input, error) {
	rules := updateRules
	if op == OpCreate {
		rules = createRules
	}

	var (
		in         Input
		violations []domain.FieldError
	)
	for i := range rules {
		r := &rules[i]
		raw, present := payload[r.field]
		if !present {
			switch {
			case r.required:
				violations = append(violations, r.violation(codeRequired))
			case r.fallback != "":
				assign(&in, r.field, r.fallback)
			}
			continue
		}

		v, code := r.check(raw, now)
		if code != "" {
			violations = append(violations, r.violation(code))
			continue
		}
		assign(&in, r.field, v)
	}

	if len(violations) > 0 {
		return Input{}, &domain.ValidationError{Fields: violations}
	}
	return in, nil
}

// check converts raw into the rule's type and applies its constraints.
// It returns a violation code, or "" when the value is acceptable.
func (r *fieldRule) check(raw any, now time.Time) (any, string) {
	switch r.kind {
	case kindBool:
		b, ok := toBool(raw)
		if !ok {
			return nil, codeType
		}
		return b, ""
	case kindDate:
		t, ok := toTime(raw)
		if !ok {
			return nil, codeType
		}
		if r.futureOnly && !t.After(now) {
			return nil, codeFuture
		}
		return t, ""
	default:
		s, ok := raw.(string)
		if !ok {
			return nil, codeType
		}
		if len(r.oneOf) > 0 {
			if !contains(r.oneOf, s) {
				return nil, codeOneOf
			}
			return s, ""
		}
		if r.trim {
			s = strings.TrimSpace(s)
		}
		if s == "" && !r.allowEmpty {
			return nil, codeEmpty
		}
		if r.maxLen > 0 && utf8.RuneCountInString(s) > r.maxLen {
			return nil, codeMax
		}
		return s, ""
	}
}

func (r *fieldRule) violation(code string) domain.FieldError {
	msg, ok := r.messages[code]
	if !ok {
		msg = r.defaultMessage(code)
	}
	return domain.FieldError{Field: r.field, Message: msg}
}

func (r *fieldRule) defaultMessage(code string) string {
	switch code {
	case codeRequired:
		return fmt.Sprintf("%q is required", r.field)
	case codeEmpty:
		return fmt.Sprintf("%q is not allowed to be empty", r.field)
	case codeMax:
		return fmt.Sprintf("%q length must be less than or equal to %d characters long", r.field, r.maxLen)
	case codeOneOf:
		return fmt.Sprintf("%q must be one of [%s]", r.field, strings.Join(r.oneOf, ", "))
	case codeFuture:
		return fmt.Sprintf("%q must be in the future", r.field)
	default:
		switch r.kind {
		case kindBool:
			return fmt.Sprintf("%q must be a boolean", r.field)
		case kindDate:
			return fmt.Sprintf("%q must be a valid date", r.field)
		default:
			return fmt.Sprintf("%q must be a string", r.field)
		}
	}
}

func assign(in *Input, field string, v any) {
	switch field {
	case "title":
		s := v.(string)
		in.Title = &s
	case "description":
		s := v.(string)
		in.Description = &s
	case "priority":
		p := Priority(v.(string))
		in.Priority = &p
	case "completed":
		b := v.(bool)
		in.Completed = &b
	case "dueDate":
		t := v.(time.Time)
		in.DueDate = &t
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// dateLayouts are tried in order for string due dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// toTime accepts RFC 3339 timestamps, bare dates, and epoch milliseconds.
// Times outside years 0-9999 are rejected; they cannot be encoded as JSON.
func toTime(raw any) (time.Time, bool) {
	t, ok := parseTime(raw)
	if !ok || t.Year() < 0 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

func parseTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
		if f, err := v.Float64(); err == nil {
			return fromMillis(f)
		}
	case float64:
		return fromMillis(v)
	}
	return time.Time{}, false
}

// fromMillis converts fractional epoch milliseconds. Values outside the
// int64 range are rejected before conversion.
func fromMillis(f float64) (time.Time, bool) {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(f)).UTC(), true
}
