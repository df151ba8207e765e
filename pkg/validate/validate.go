// Package validate provides struct-tag validation for request inputs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	numeric             any number
//	integer             whole number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N                number > N
//	gte=N               number >= N
//	lt=N                number < N
//	lte=N               number <= N
//	between=min,max     number or string length between min and max (inclusive)
//	in=a,b,c            value must be one of the listed items
//
// Pointer fields are dereferenced first; a nil pointer counts as empty, so
// `nullable` makes a rule set apply only when the field was supplied —
// exactly what partial-update inputs need:
//
//	type UpdateInput struct {
//	    Brand *string `json:"brand" validate:"nullable,min=1,max=255"`
//	    Price *int    `json:"price" validate:"nullable,gte=0"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ─── Public API ───────────────────────────────────────────────────────────────

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		// If `nullable` is present and field is empty — skip all rules.
		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, deref(value)); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

// ─── Core dispatcher ──────────────────────────────────────────────────────────

func applyRule(rule, field string, v reflect.Value) string {
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "numeric":
		if _, ok := numericValue(v); !ok {
			return fmt.Sprintf("The %s must be a number.", field)
		}

	case "integer":
		n, ok := numericValue(v)
		if !ok || n != float64(int64(n)) {
			return fmt.Sprintf("The %s must be an integer.", field)
		}

	case "min":
		limit, _ := strconv.ParseFloat(param, 64)
		if size(v) < limit {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		limit, _ := strconv.ParseFloat(param, 64)
		if size(v) > limit {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	case "gt":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); !ok || n <= limit {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); !ok || n < limit {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "lt":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); !ok || n >= limit {
			return fmt.Sprintf("The %s must be less than %s.", field, param)
		}
	case "lte":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); !ok || n > limit {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}

	case "between":
		lo, hi, _ := strings.Cut(param, ",")
		loF, _ := strconv.ParseFloat(lo, 64)
		hiF, _ := strconv.ParseFloat(hi, 64)
		if s := size(v); s < loF || s > hiF {
			return fmt.Sprintf("The %s must be between %s and %s.", field, lo, hi)
		}

	case "in":
		raw := fmt.Sprintf("%v", v.Interface())
		for _, item := range strings.Split(param, ",") {
			if raw == item {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

// knownRules are the bare rule keywords; anything else without "=" is a
// continuation of the preceding parameterised rule (between=0,5 / in=a,b,c).
var knownRules = map[string]bool{
	"required": true, "nullable": true, "numeric": true, "integer": true,
}

// splitRules splits a validate tag on commas while keeping commas that
// belong to a rule's parameter list attached to that rule.
func splitRules(tag string) []string {
	var rules []string
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(rules) > 0 && !strings.Contains(part, "=") && !knownRules[part] {
			rules[len(rules)-1] += "," + part
			continue
		}
		rules = append(rules, part)
	}
	return rules
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		// A non-nil pointer is a supplied value, even when it points at a
		// zero; only nil means "absent".
		return v.IsNil()
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Invalid:
		return true
	default:
		return v.IsZero()
	}
}

// numericValue extracts a float64 from any numeric kind.
func numericValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.String:
		n, err := strconv.ParseFloat(v.String(), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// size returns the comparable magnitude of a value: numbers compare by
// value, strings by rune length.
func size(v reflect.Value) float64 {
	if v.Kind() == reflect.String {
		return float64(len([]rune(v.String())))
	}
	if n, ok := numericValue(v); ok {
		return n
	}
	return 0
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == name {
			return true
		}
	}
	return false
}

// jsonFieldName prefers the json tag name, falling back to the Go name.
func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}
