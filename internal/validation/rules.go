// internal/validation/rules.go
package validation

import (
	"fmt"
	"math"
	"sort"
)

// Rule checks one value at one document path.
// Rules are composed statically into a schema; traversal is
// depth-first in declared field order and stops at the first violation.
type Rule interface {
	Validate(path string, value any) error
}

// Error is a single rule violation: the failing field path plus a
// description of the rule that rejected it.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

func fail(path, format string, args ...any) *Error {
	return &Error{Path: path, Message: fmt.Sprintf(format, args...)}
}

func child(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// ---- OBJECT ----

// Field is one named member of an Object.
type Field struct {
	Name     string
	Rule     Rule
	Optional bool
}

// Object validates a JSON object member by member.
// Undeclared keys are rejected, unless Extra is set, in which case
// every undeclared member is validated against Extra instead.
type Object struct {
	Fields []Field
	Extra  Rule
}

func (o Object) Validate(path string, value any) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fail(path, "expected object, got %s", typeName(value))
	}

	declared := make(map[string]struct{}, len(o.Fields))
	for _, f := range o.Fields {
		declared[f.Name] = struct{}{}
	}

	// Sorted key walk keeps the first-failure deterministic.
	extras := make([]string, 0, len(m))
	for k := range m {
		if _, ok := declared[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)

	if o.Extra == nil && len(extras) > 0 {
		return fail(path, "unknown key %q", extras[0])
	}

	for _, f := range o.Fields {
		v, present := m[f.Name]
		if !present {
			if f.Optional {
				continue
			}
			return fail(path, "missing required key %q", f.Name)
		}
		if err := f.Rule.Validate(child(path, f.Name), v); err != nil {
			return err
		}
	}

	if o.Extra != nil {
		for _, k := range extras {
			if err := o.Extra.Validate(child(path, k), m[k]); err != nil {
				return err
			}
		}
	}

	return nil
}

// ---- STRING ----

type stringRule struct {
	check func(string) error
}

// String accepts any string value.
func String() Rule {
	return stringRule{}
}

// StringCheck accepts a string value that also passes a semantic check.
// This is the extension point for name-resolution rules: the check runs
// during schema traversal, so a semantic rejection surfaces with the
// same field path as a structural one.
func StringCheck(check func(string) error) Rule {
	return stringRule{check: check}
}

func (r stringRule) Validate(path string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fail(path, "expected string, got %s", typeName(value))
	}
	if r.check != nil {
		if err := r.check(s); err != nil {
			return fail(path, "%v", err)
		}
	}
	return nil
}

// ---- NUMBER ----

type numberRule struct {
	min float64
	max float64
}

// Number accepts any numeric value.
func Number() Rule {
	return numberRule{min: math.Inf(-1), max: math.Inf(1)}
}

// Min accepts a numeric value >= lo.
func Min(lo float64) Rule {
	return numberRule{min: lo, max: math.Inf(1)}
}

// Range accepts a numeric value in [lo, hi].
func Range(lo, hi float64) Rule {
	return numberRule{min: lo, max: hi}
}

func (r numberRule) Validate(path string, value any) error {
	n, ok := toFloat(value)
	if !ok {
		return fail(path, "expected number, got %s", typeName(value))
	}
	if n < r.min {
		return fail(path, "value %v below minimum %v", n, r.min)
	}
	if n > r.max {
		return fail(path, "value %v above maximum %v", n, r.max)
	}
	return nil
}

// ---- ARRAY ----

type arrayRule struct {
	items Rule
	exact int // 0 = any length
}

// Array accepts an array whose every element passes items.
func Array(items Rule) Rule {
	return arrayRule{items: items}
}

// ArrayN accepts an array of exactly n elements, each passing items.
func ArrayN(n int, items Rule) Rule {
	return arrayRule{items: items, exact: n}
}

func (r arrayRule) Validate(path string, value any) error {
	a, ok := value.([]any)
	if !ok {
		return fail(path, "expected array, got %s", typeName(value))
	}
	if r.exact > 0 && len(a) != r.exact {
		return fail(path, "expected exactly %d elements, got %d", r.exact, len(a))
	}
	for i, v := range a {
		if err := r.items.Validate(fmt.Sprintf("%s[%d]", path, i), v); err != nil {
			return err
		}
	}
	return nil
}

// ---- HELPERS ----

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", value)
}
