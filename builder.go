// File: argconf/builder.go
package argconf

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for assembling a resolution.
type Builder struct {
	desc   Description
	args   []string
	envVar string
	env    EnvSource
	logger zerolog.Logger
}

// NewBuilder creates a new resolution builder. By default it resolves
// against os.Args, reads the real process environment and logs nothing.
func NewBuilder() *Builder {
	return &Builder{
		args:   os.Args,
		env:    OSEnv{},
		logger: zerolog.Nop(),
	}
}

// WithDescription sets the option schema to resolve against.
func (b *Builder) WithDescription(d Description) *Builder {
	b.desc = d
	return b
}

// WithArgs sets the invocation token list. The first element is the program
// name placeholder and is never matched against any option.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvVar sets the name of the environment variable holding the config
// file path. An empty name disables file loading entirely.
func (b *Builder) WithEnvVar(name string) *Builder {
	b.envVar = name
	return b
}

// WithEnv sets the environment source used to look up the config file path.
func (b *Builder) WithEnv(env EnvSource) *Builder {
	b.env = env
	return b
}

// WithLogger sets the logger that receives file-loading diagnostics.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build runs the resolution: schema validation, a first match against the
// raw invocation to check the bypass flag, file loading and merging unless
// bypassed, the final match, and extraction into a Resolved mapping with one
// entry per schema option.
func (b *Builder) Build() (*Resolved, error) {
	if err := b.desc.validate(); err != nil {
		return nil, err
	}
	if len(b.args) == 0 {
		return nil, fmt.Errorf("%w: invocation tokens must include the program name", ErrSchema)
	}

	// Bypass-check pass against the raw invocation only. Required options are
	// not checked here because a required value may still arrive from the
	// config file.
	first := newMatcher(b.desc)
	if err := first.parse(b.args); err != nil {
		return nil, err
	}

	var (
		tokens   []string
		warnings []error
	)
	if first.bypassed() {
		b.logger.Debug().Str("flag", NoConfigFlag).Msg("config file loading disabled")
	} else {
		tokens, warnings = fileTokens(b.env, b.envVar, b.logger)
	}

	// With no file tokens the first pass already matched the exact token
	// stream the final pass would see, so its result is reused instead of
	// re-parsing identical input.
	authoritative := first
	if len(tokens) > 0 {
		final := newMatcher(b.desc)
		if err := final.parse(mergeTokens(b.args, tokens)); err != nil {
			return nil, err
		}
		authoritative = final
	}
	if err := checkRequired(authoritative, b.desc); err != nil {
		return nil, err
	}

	values := make(map[string]Value, len(b.desc.Options))
	for _, o := range b.desc.Options {
		values[o.Name] = authoritative.value(o)
	}
	return &Resolved{desc: b.desc, values: values, warnings: warnings}, nil
}

// checkRequired enforces required options on the authoritative match result.
// It runs over the extracted tri-state, so a required option with a declared
// default is always satisfied, whether or not file tokens were merged.
func checkRequired(m *matcher, d Description) error {
	for _, o := range d.Options {
		if o.Required && !m.value(o).IsSet() {
			return fmt.Errorf("%w: missing required parameter '%s'", ErrMatch, o.Name)
		}
	}
	return nil
}
