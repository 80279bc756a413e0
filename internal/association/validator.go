package association

import (
	"reflect"

	"customeroptions/internal/constraint"
)

const (
	errNotCollection = "association.Validator can only validate collections containing association.HasOptionCode"
	errInvalidEntry  = "Invalid entry type"
)

// Validator checks that a collection references every option at most once.
type Validator struct{}

var _ constraint.Validator = Validator{}

// Validate implements constraint.Validator.
func (Validator) Validate(value any, c constraint.Constraint, sink constraint.ViolationSink) error {
	return Validate(value, c, sink)
}

// Validate accepts any slice or array whose elements implement HasOptionCode.
// Every occurrence of an option code after its first reports one violation;
// scanning does not stop at the first duplicate. An element that does not
// implement HasOptionCode aborts the check.
func Validate(value any, c constraint.Constraint, sink constraint.ViolationSink) error {
	if v, ok := value.([]OptionAssociation); ok {
		Duplicates(v, c, sink)
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return constraint.InvalidArgument(errNotCollection)
	}

	seen := make(map[string]bool, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, ok := rv.Index(i).Interface().(HasOptionCode)
		if !ok || isNil(item) {
			return constraint.InvalidArgument(errInvalidEntry)
		}
		check(item.OptionCode(), seen, c, sink)
	}
	return nil
}

// Duplicates reports one violation per repeated option code and returns the
// number reported. Nil elements are skipped.
func Duplicates[T HasOptionCode](items []T, c constraint.Constraint, sink constraint.ViolationSink) int {
	seen := make(map[string]bool, len(items))
	reported := 0
	for _, item := range items {
		if isNil(item) {
			continue
		}
		if check(item.OptionCode(), seen, c, sink) {
			reported++
		}
	}
	return reported
}

func check(code string, seen map[string]bool, c constraint.Constraint, sink constraint.ViolationSink) bool {
	if seen[code] {
		sink.AddViolation(c.Message)
		return true
	}
	seen[code] = true
	return false
}

// isNil catches nil interfaces and typed nil pointers stored in an interface.
func isNil(item HasOptionCode) bool {
	if item == nil {
		return true
	}
	rv := reflect.ValueOf(item)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
