// File: argconf/option.go
package argconf

import (
	"fmt"
	"strings"
)

// Option describes a single command-line option that an application accepts.
// The identity of an option is its name: two Option values with the same name
// refer to the same option for mapping purposes, regardless of their other
// fields. Options are plain data and carry no behavior.
type Option struct {
	// Name of the option without leading dashes, e.g. "tls-keystore-location".
	// It is both the matching key and the long flag name on the command line.
	Name string

	// Default value to substitute when the option never appears in the final
	// token stream. Only meaningful when TakesArgument is true; a default on a
	// presence flag is ignored.
	Default string

	// Required options must appear in the final token stream (or carry a
	// default); otherwise resolution fails with ErrMatch.
	Required bool

	// TakesArgument is true for value-taking options, false for presence flags.
	TakesArgument bool

	// Repeatable options retain every occurrence in final token order. For
	// non-repeatable options the last occurrence wins and earlier ones are
	// discarded.
	Repeatable bool

	// Help is the short text shown in the generated usage message.
	Help string

	// Documentation is the longer text used when generating external
	// documentation. It has no behavioral effect.
	Documentation string
}

// Description is the full option schema for one application: the metadata
// used in the generated help message plus the set of accepted options.
// A Description is built once per resolution and read-only afterward.
type Description struct {
	Name    string
	Version string
	About   string
	Options []Option
}

// Merge returns a copy of the description with additional options appended.
// Shared option catalogs like TLSOptions are combined this way.
func (d Description) Merge(options ...Option) Description {
	combined := make([]Option, 0, len(d.Options)+len(options))
	combined = append(combined, d.Options...)
	combined = append(combined, options...)
	d.Options = combined
	return d
}

// validate checks the schema for caller programming errors before any
// matching happens. Duplicate or malformed names and collisions with the
// reserved bypass flag are reported as ErrSchema.
func (d Description) validate() error {
	seen := make(map[string]bool, len(d.Options))
	for _, o := range d.Options {
		if o.Name == "" {
			return fmt.Errorf("%w: option with empty name", ErrSchema)
		}
		if strings.HasPrefix(o.Name, "-") {
			return fmt.Errorf("%w: option name %q must not start with a dash", ErrSchema, o.Name)
		}
		if o.Name == NoConfigFlag {
			return fmt.Errorf("%w: option name %q is reserved", ErrSchema, o.Name)
		}
		if seen[o.Name] {
			return fmt.Errorf("%w: duplicate option name %q", ErrSchema, o.Name)
		}
		seen[o.Name] = true
	}
	return nil
}
