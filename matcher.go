// File: argconf/matcher.go
package argconf

import (
	"fmt"

	"github.com/DavidGamba/go-getoptions"
)

// matcher adapts a Description to the go-getoptions engine. One matcher slot
// is declared per option; the engine owns token lexing, unknown-option
// detection and last-occurrence-wins handling for single-value options.
// Required options are not declared to the engine: the engine would reject an
// uncalled option even when a declared default satisfies it, so enforcement
// lives in checkRequired, which reads the extracted tri-state instead. A
// matcher is built fresh for each parse pass, so re-matching is side-effect
// free.
type matcher struct {
	opt      *getoptions.GetOpt
	noConfig *bool
	flags    map[string]*bool
	singles  map[string]*string
	multis   map[string]*[]string
}

// newMatcher builds the engine configuration for one pass.
func newMatcher(d Description) *matcher {
	m := &matcher{
		opt:     getoptions.New(),
		flags:   make(map[string]*bool),
		singles: make(map[string]*string),
		multis:  make(map[string]*[]string),
	}
	m.opt.Self(d.Name, selfDescription(d))
	m.opt.SetUnknownMode(getoptions.Fail)

	m.noConfig = m.opt.Bool(NoConfigFlag, false,
		m.opt.Description("Do not load arguments from the config file"))

	for _, o := range d.Options {
		var mods []getoptions.ModifyFn
		if o.Help != "" {
			mods = append(mods, m.opt.Description(o.Help))
		}

		switch {
		case !o.TakesArgument:
			// A default on a switch makes no sense and is ignored.
			m.flags[o.Name] = m.opt.Bool(o.Name, false, mods...)
		case o.Repeatable:
			m.multis[o.Name] = m.opt.StringSlice(o.Name, 1, 1, mods...)
		default:
			m.singles[o.Name] = m.opt.String(o.Name, o.Default, mods...)
		}
	}
	return m
}

// selfDescription renders the help description for the program itself. The
// engine has no dedicated version slot, so the declared version rides along
// in the about text.
func selfDescription(d Description) string {
	switch {
	case d.Version == "":
		return d.About
	case d.About == "":
		return "version " + d.Version
	default:
		return d.About + " (version " + d.Version + ")"
	}
}

// parse matches the token stream. tokens must carry the program name in
// position 0; the engine only sees tokens[1:].
func (m *matcher) parse(tokens []string) error {
	if _, err := m.opt.Parse(tokens[1:]); err != nil {
		return fmt.Errorf("%w: %v", ErrMatch, err)
	}
	return nil
}

// bypassed reports whether the reserved no-config flag was matched.
func (m *matcher) bypassed() bool { return *m.noConfig }

// value extracts the tri-state result for one option after a successful
// parse. Structural presence is what the engine reports through Called; a
// value-taking option with a declared default that never appeared resolves to
// that default, mirroring the engine's own substitution into the bound
// variable.
func (m *matcher) value(o Option) Value {
	switch {
	case !o.TakesArgument:
		if *m.flags[o.Name] {
			return flagValue()
		}
		return absentValue()

	case o.Repeatable:
		if vals := *m.multis[o.Name]; len(vals) > 0 {
			return listValue(append([]string(nil), vals...))
		}
		if o.Default != "" {
			return listValue([]string{o.Default})
		}
		return absentValue()

	default:
		if m.opt.Called(o.Name) || o.Default != "" {
			return listValue([]string{*m.singles[o.Name]})
		}
		return absentValue()
	}
}
