// File: argconf/convenience.go
package argconf

import "fmt"

// Configurable is implemented by configuration owners. ConfigDescription
// supplies the options the owner understands; ParseValues receives the
// resolved values and turns them into whatever typed representation the
// owner exposes to the rest of the program.
type Configurable interface {
	ConfigDescription() Description
	ParseValues(r *Resolved) error
}

// Resolve resolves a description against the given invocation tokens with a
// single call. This is the recommended entry point for most applications.
// args is the full invocation including the program name (e.g. os.Args);
// envVar names the environment variable holding the config file path.
func Resolve(d Description, args []string, envVar string) (*Resolved, error) {
	return NewBuilder().
		WithDescription(d).
		WithArgs(args).
		WithEnvVar(envVar).
		Build()
}

// Build resolves configuration for a Configurable owner: it obtains the
// description, resolves it, and hands the result back for materialization.
func Build(c Configurable, args []string, envVar string) error {
	resolved, err := Resolve(c.ConfigDescription(), args, envVar)
	if err != nil {
		return err
	}
	return c.ParseValues(resolved)
}

// MustResolve is like Resolve but panics on error. Intended for program
// startup where a schema or usage error is unrecoverable anyway.
func MustResolve(d Description, args []string, envVar string) *Resolved {
	resolved, err := Resolve(d, args, envVar)
	if err != nil {
		panic(fmt.Sprintf("config resolution failed: %v", err))
	}
	return resolved
}
