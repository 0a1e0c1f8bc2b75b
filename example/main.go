// FILE: argconf/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"argconf"
)

// ServerConfig is the typed configuration this demo program runs on. The TLS
// options are shared catalog entries; the rest are program-specific.
type ServerConfig struct {
	Listen  string        `opt:"listen"`
	Timeout time.Duration `opt:"timeout"`
	Debug   bool          `opt:"debug"`
	TLS     argconf.TLSConfig
}

const configPathVar = "EXAMPLE_CONFIG_PATH"

func main() {
	// Write an rc file and point the environment variable at it, so the demo
	// shows file values being overridden by command-line values.
	dir, err := os.MkdirTemp("", "argconf-example")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	rcPath := filepath.Join(dir, "example.rc")
	rcContent := "# demo configuration\n--listen\n0.0.0.0:7000\n--timeout\n45s\n--debug\n"
	if err := os.WriteFile(rcPath, []byte(rcContent), 0644); err != nil {
		log.Fatalf("failed to write rc file: %v", err)
	}
	os.Setenv(configPathVar, rcPath)
	defer os.Unsetenv(configPathVar)

	desc := argconf.Description{
		Name:    "example-server",
		Version: "0.1",
		About:   "argconf demo program",
		Options: []argconf.Option{
			{Name: "listen", TakesArgument: true, Default: "localhost:9000", Help: "Address to listen on"},
			{Name: "timeout", TakesArgument: true, Default: "30s", Help: "Request timeout"},
			{Name: "debug", Help: "Enable debug output"},
		},
	}
	desc = desc.Merge(argconf.TLSOptions()...)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	// The listen address from the command line wins over the rc file; the
	// timeout and debug flag come from the file.
	args := []string{"example-server", "--listen", "localhost:8443", "--tls-keystore-location", "/etc/keys/server.p12"}

	resolved, err := argconf.NewBuilder().
		WithDescription(desc).
		WithArgs(args).
		WithEnvVar(configPathVar).
		WithLogger(logger).
		Build()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration resolution failed")
	}

	for _, warn := range resolved.Warnings() {
		logger.Warn().Err(warn).Msg("config file diagnostic")
	}

	var cfg ServerConfig
	if err := resolved.Scan(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to scan configuration")
	}
	if err := resolved.Scan(&cfg.TLS); err != nil {
		logger.Fatal().Err(err).Msg("failed to scan TLS configuration")
	}

	fmt.Printf("listen:   %s\n", cfg.Listen)
	fmt.Printf("timeout:  %s\n", cfg.Timeout)
	fmt.Printf("debug:    %v\n", cfg.Debug)
	fmt.Printf("keystore: %s\n", cfg.TLS.KeystoreLocation)

	fmt.Println("\nresolved configuration as TOML:")
	if err := resolved.Dump(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to dump configuration")
	}
}
