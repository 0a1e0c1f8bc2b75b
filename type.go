// File: argconf/type.go
package argconf

import (
	"fmt"
	"strconv"
)

// String retrieves the winning value of a value-taking option as a string.
// An absent option yields the empty string for convenience; a presence flag
// is an error, use Bool for those.
func (r *Resolved) String(name string) (string, error) {
	v, ok := r.values[name]
	if !ok {
		return "", fmt.Errorf("option not in schema: %s", name)
	}
	switch v.kind {
	case Absent:
		return "", nil
	case FlagSet:
		return "", fmt.Errorf("option %s is a flag, use Bool", name)
	}
	return v.values[len(v.values)-1], nil
}

// Strings retrieves all values of a repeatable option in final token order.
// An absent option yields nil.
func (r *Resolved) Strings(name string) ([]string, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, fmt.Errorf("option not in schema: %s", name)
	}
	if v.kind == FlagSet {
		return nil, fmt.Errorf("option %s is a flag, use Bool", name)
	}
	return v.Strings(), nil
}

// Bool retrieves an option as a boolean. For a presence flag it reports
// whether the flag appeared; for a value-taking option the winning value is
// parsed with strconv.ParseBool. An absent option is false.
func (r *Resolved) Bool(name string) (bool, error) {
	v, ok := r.values[name]
	if !ok {
		return false, fmt.Errorf("option not in schema: %s", name)
	}
	switch v.kind {
	case Absent:
		return false, nil
	case FlagSet:
		return true, nil
	}

	s := v.values[len(v.values)-1]
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("cannot convert value %q of option %s to bool: %w", s, name, err)
	}
	return b, nil
}

// Int64 retrieves the winning value of a value-taking option as an int64.
// Base prefixes are auto-detected (e.g. "0xFF"). Absent options and flags
// are errors.
func (r *Resolved) Int64(name string) (int64, error) {
	s, err := r.requireValue(name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert value %q of option %s to int64: %w", s, name, err)
	}
	return i, nil
}

// Float64 retrieves the winning value of a value-taking option as a float64.
// Absent options and flags are errors.
func (r *Resolved) Float64(name string) (float64, error) {
	s, err := r.requireValue(name)
	if err != nil {
		return 0.0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0, fmt.Errorf("cannot convert value %q of option %s to float64: %w", s, name, err)
	}
	return f, nil
}

// requireValue returns the winning value of an option that must have resolved
// to at least one value.
func (r *Resolved) requireValue(name string) (string, error) {
	v, ok := r.values[name]
	if !ok {
		return "", fmt.Errorf("option not in schema: %s", name)
	}
	switch v.kind {
	case Absent:
		return "", fmt.Errorf("option %s is not set", name)
	case FlagSet:
		return "", fmt.Errorf("option %s is a flag, use Bool", name)
	}
	return v.values[len(v.values)-1], nil
}
