package configuration

import (
	"errors"
	"fmt"
	"strings"

	"customeroptions/internal/constraint"
)

const (
	minMarker = "min"
	maxMarker = "max"
)

// ErrMissingValue is returned when a matched min or max entry has no value.
var ErrMissingValue = errors.New("configuration entry has no value")

// errCannotValidate is the message for values this rule cannot inspect.
const errCannotValidate = "Can not validate configurations."

// Validator checks that a configuration's minimum does not exceed its maximum.
type Validator struct{}

var _ constraint.Validator = Validator{}

// Validate implements constraint.Validator.
func (Validator) Validate(value any, c constraint.Constraint, sink constraint.ViolationSink) error {
	return Validate(value, c, sink)
}

// Validate checks a ConfigurationSet with at least two entries.
// The first key containing "min" and the first containing "max" are
// compared; a set lacking either passes. One violation is reported when
// the minimum exceeds the maximum.
func Validate(value any, c constraint.Constraint, sink constraint.ViolationSink) error {
	var set ConfigurationSet
	switch v := value.(type) {
	case ConfigurationSet:
		set = v
	case *ConfigurationSet:
		if v != nil {
			set = *v
		}
	default:
		return constraint.InvalidArgument(errCannotValidate)
	}

	if len(set) < 2 {
		return constraint.InvalidArgument(errCannotValidate)
	}

	r, found, err := set.Range()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	ValidateRange(r, c, sink)
	return nil
}

// ValidateRange reports one violation when both bounds are present and the
// minimum exceeds the maximum.
func ValidateRange(r Range, c constraint.Constraint, sink constraint.ViolationSink) {
	if r.Minimum == nil || r.Maximum == nil {
		return
	}
	if *r.Minimum > *r.Maximum {
		sink.AddViolation(c.Message)
	}
}

// Range discovers the min/max pair by substring match on the keys.
// When several keys match, the first in set order wins and the rest are
// ignored. found is false when either bound has no matching key.
func (s ConfigurationSet) Range() (r Range, found bool, err error) {
	minEntry, hasMin := s.firstContaining(minMarker)
	maxEntry, hasMax := s.firstContaining(maxMarker)
	if !hasMin || !hasMax {
		return Range{}, false, nil
	}

	if minEntry.Value == nil {
		return Range{}, false, fmt.Errorf("%w: '%s'", ErrMissingValue, minEntry.Key)
	}
	if maxEntry.Value == nil {
		return Range{}, false, fmt.Errorf("%w: '%s'", ErrMissingValue, maxEntry.Key)
	}

	return Range{
		MinKey:  minEntry.Key,
		MaxKey:  maxEntry.Key,
		Minimum: minEntry.Value,
		Maximum: maxEntry.Value,
	}, true, nil
}

func (s ConfigurationSet) firstContaining(marker string) (ConfigurationEntry, bool) {
	for _, e := range s {
		if strings.Contains(e.Key, marker) {
			return e, true
		}
	}
	return ConfigurationEntry{}, false
}
