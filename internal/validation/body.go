// Package validation holds the request shape checks and reference lookups
// applied before any mutation reaches the store.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"wanderdex/pkg/utils"
)

// RequireObjectBody asserts body is a single JSON object.
func RequireObjectBody(body interface{}, context string) (map[string]interface{}, error) {
	obj, ok := body.(map[string]interface{})
	if !ok || obj == nil {
		return nil, utils.BadRequest("%s body must be a JSON object", context)
	}
	return obj, nil
}

// NormalizeToList accepts one object or a non-empty array of objects.
func NormalizeToList(body interface{}) ([]map[string]interface{}, error) {
	switch v := body.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{v}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, utils.BadRequest("Input list cannot be empty")
		}
		items := make([]map[string]interface{}, 0, len(v))
		for _, raw := range v {
			item, ok := raw.(map[string]interface{})
			if !ok {
				return nil, utils.BadRequest("Each item must be a JSON object")
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, utils.BadRequest("Invalid input format")
	}
}

// RequireFields checks, in order, for missing, unexpected and empty fields.
func RequireFields(body map[string]interface{}, required []string, itemName string, optional ...string) error {
	allowed := make(map[string]struct{}, len(required)+len(optional))
	for _, f := range required {
		allowed[f] = struct{}{}
	}
	for _, f := range optional {
		allowed[f] = struct{}{}
	}

	var missing, empty []string
	for _, f := range required {
		v, ok := body[f]
		if !ok {
			missing = append(missing, f)
			continue
		}
		if IsEmpty(v) {
			empty = append(empty, f)
		}
	}

	var extra []string
	for f := range body {
		if _, ok := allowed[f]; !ok {
			extra = append(extra, f)
		}
	}
	sort.Strings(extra)

	suffix := ""
	if itemName != "" {
		suffix = fmt.Sprintf(" in item '%s'", itemName)
	}

	switch {
	case len(missing) > 0:
		return utils.BadRequest("Missing fields: %s%s", strings.Join(missing, ", "), suffix)
	case len(extra) > 0:
		return utils.BadRequest("Extra fields not allowed: %s%s", strings.Join(extra, ", "), suffix)
	case len(empty) > 0:
		return utils.BadRequest("Fields cannot be empty: %s%s", strings.Join(empty, ", "), suffix)
	}
	return nil
}

// RequireAllowedFields guards partial updates: at least one key, all allow-listed.
func RequireAllowedFields(body map[string]interface{}, allowed ...string) error {
	if len(body) == 0 {
		return utils.BadRequest("No valid fields supplied")
	}
	set := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		set[f] = struct{}{}
	}
	for f := range body {
		if _, ok := set[f]; !ok {
			return utils.BadRequest("No valid fields supplied")
		}
	}
	return nil
}

// IsEmpty reports null, blank strings and empty collections. Numbers and
// booleans are never empty.
func IsEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	default:
		return false
	}
}

// KeySet rejects natural keys repeated within one batch request.
type KeySet map[string]struct{}

func (k KeySet) Claim(key string) error {
	if _, seen := k[key]; seen {
		return utils.BadRequest("Duplicate entry: %s", key)
	}
	k[key] = struct{}{}
	return nil
}
