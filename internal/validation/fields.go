package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"wanderdex/pkg/utils"
)

// String reads a string field; absent reads as "".
func String(body map[string]interface{}, field string) (string, error) {
	v, ok := body[field]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", utils.BadRequest("%s must be a string", field)
	}
	return s, nil
}

// NonEmptyString reads a field that, when present, must be a non-blank string.
func NonEmptyString(body map[string]interface{}, field string) (string, bool, error) {
	if _, ok := body[field]; !ok {
		return "", false, nil
	}
	s, err := String(body, field)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(s) == "" {
		return "", false, utils.BadRequest("Fields cannot be empty: %s", field)
	}
	return s, true, nil
}

// Float accepts a JSON number or a numeric string.
func Float(body map[string]interface{}, field string) (float64, error) {
	var f float64
	switch v := body[field].(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, utils.BadRequest("latitude/longitude must be numeric")
		}
		f = parsed
	default:
		return 0, utils.BadRequest("latitude/longitude must be numeric")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, utils.BadRequest("latitude/longitude must be numeric")
	}
	return f, nil
}

// StringList reads an optional list of non-empty strings.
func StringList(body map[string]interface{}, field, label string) ([]string, error) {
	raw, ok := body[field]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, utils.BadRequest("%s must be a list", field)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, utils.BadRequest("each %s must be a non-empty string", label)
		}
		out = append(out, s)
	}
	return out, nil
}

// ParseID parses an identifier taken from a path or body; unparseable ids
// resolve to nothing, so they surface as notFound.
func ParseID(raw string, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.NotFound("%s", notFound)
	}
	return id, nil
}
