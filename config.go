// File: argconf/config.go
package argconf

// Kind classifies the resolved state of one option.
type Kind int

const (
	// Absent means the option appeared nowhere in the final token stream and
	// no default was substituted.
	Absent Kind = iota
	// FlagSet means a presence flag appeared at least once.
	FlagSet
	// HasValues means a value-taking option resolved to one or more values.
	HasValues
)

// Value is the tri-state result for a single option. A non-repeatable option
// holds exactly one value (the winning occurrence); a repeatable option holds
// every occurrence in final token order, file values before command-line
// values.
type Value struct {
	kind   Kind
	values []string
}

func absentValue() Value { return Value{kind: Absent} }

func flagValue() Value { return Value{kind: FlagSet} }

func listValue(vals []string) Value { return Value{kind: HasValues, values: vals} }

// Kind returns the resolved state.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether the option was present as a flag or carries values.
func (v Value) IsSet() bool { return v.kind != Absent }

// First returns the first value. For a non-repeatable option this is the
// winning occurrence. ok is false when the option is absent or a flag.
func (v Value) First() (string, bool) {
	if v.kind != HasValues || len(v.values) == 0 {
		return "", false
	}
	return v.values[0], true
}

// Strings returns a copy of all values in final token order, or nil when the
// option did not resolve to values.
func (v Value) Strings() []string {
	if v.kind != HasValues {
		return nil
	}
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

// Len returns the number of resolved values.
func (v Value) Len() int { return len(v.values) }

// Resolved is the terminal artifact of a resolution: exactly one Value per
// option in the schema, keyed by option name. It holds no references to the
// resolution machinery and is safe to keep for the process lifetime.
type Resolved struct {
	desc     Description
	values   map[string]Value
	warnings []error
}

// Description returns the schema this configuration was resolved against.
func (r *Resolved) Description() Description { return r.desc }

// Value returns the resolved state for the named option. The second return
// value is false when the name is not part of the schema.
func (r *Resolved) Value(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// IsSet reports whether the named option was present in the final token
// stream or received a default. Unknown names report false.
func (r *Resolved) IsSet(name string) bool {
	return r.values[name].IsSet()
}

// Warnings returns the diagnostics recovered during file loading: an
// ErrFileAccess entry when the configured file was unreadable, and one
// LineError per line that could not be decoded. A non-empty slice does not
// mean resolution failed; the caller decides whether to report them.
func (r *Resolved) Warnings() []error { return r.warnings }
