// FILE: argconf/loader.go
package argconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// EnvSource supplies environment variable lookups. Production code uses
// OSEnv; tests pass a fixed MapEnv snapshot instead of mutating the process
// environment.
type EnvSource interface {
	LookupEnv(name string) (string, bool)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

// LookupEnv implements EnvSource.
func (OSEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

// MapEnv is a fixed environment snapshot.
type MapEnv map[string]string

// LookupEnv implements EnvSource.
func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// fileTokens resolves the config file path from the environment and loads it
// into argument tokens. An unset or empty variable silently yields no tokens.
// An unreadable file and undecodable lines are recovered here: the returned
// token list is best-effort and the warnings report everything that was
// skipped, so resolution never aborts because an optional file is broken.
func fileTokens(env EnvSource, envVar string, logger zerolog.Logger) (tokens []string, warnings []error) {
	if envVar == "" {
		return nil, nil
	}
	path, ok := env.LookupEnv(envVar)
	if !ok || path == "" {
		return nil, nil
	}

	tokens, lineErrs, err := parseFile(path)
	if err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("skipping config file")
		return nil, []error{err}
	}
	for _, le := range lineErrs {
		logger.Warn().Str("path", path).Int("line", le.Line).Err(le.Err).Msg("skipping config file line")
		warnings = append(warnings, le)
	}
	logger.Debug().Str("path", path).Strs("args", tokens).Msg("arguments loaded from config file")
	return tokens, warnings
}

// parseFile reads a single rc-style config file. On success it returns the
// argument tokens in file order plus one LineError per line that could not
// be decoded. An unopenable file is an ErrFileAccess for the whole load.
func parseFile(path string) ([]string, []*LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	defer f.Close()

	tokens, lineErrs, err := parseReader(f, path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	return tokens, lineErrs, nil
}

// parseReader parses rc-file content: one argument token per line, trimmed at
// both ends. A line that is empty after trimming or starts with '#' produces
// no token. Lines are never split into words; the rc convention is one shell
// argument per line. Line length is unbounded, so a single oversized line
// cannot fail the whole file.
func parseReader(r io.Reader, path string) ([]string, []*LineError, error) {
	var (
		tokens   []string
		lineErrs []*LineError
	)

	br := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			lineNumber++

			line = strings.TrimSpace(line)
			switch {
			case line == "" || line[0] == '#':
			case !utf8.ValidString(line):
				lineErrs = append(lineErrs, &LineError{
					Path: path,
					Line: lineNumber,
					Err:  errors.New("invalid UTF-8 sequence"),
				})
			default:
				tokens = append(tokens, line)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, readErr
		}
	}

	return tokens, lineErrs, nil
}
