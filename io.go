// File: argconf/io.go
package argconf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// exportMap renders the resolved values for TOML output. Absent options are
// omitted so the dump reflects exactly what resolution produced.
func (r *Resolved) exportMap() map[string]any {
	data := make(map[string]any, len(r.desc.Options))
	for _, o := range r.desc.Options {
		v := r.values[o.Name]
		switch v.kind {
		case FlagSet:
			data[o.Name] = true
		case HasValues:
			if o.Repeatable {
				data[o.Name] = v.Strings()
			} else {
				data[o.Name] = v.values[len(v.values)-1]
			}
		}
	}
	return data
}

// Dump writes the resolved configuration to w in TOML format. Useful for
// --print-config style debugging output.
func (r *Resolved) Dump(w io.Writer) error {
	return toml.NewEncoder(w).Encode(r.exportMap())
}

// Save writes the resolved configuration to a TOML file atomically.
func (r *Resolved) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(r.exportMap()); err != nil {
		return fmt.Errorf("failed to marshal resolved config to TOML: %w", err)
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile writes data through a temp file and rename so readers never
// observe a partially written file.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
