// Package emitter renders and writes the generated Fossil test runners.
package emitter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"fossilgen/internal/domain"
)

// Emitter renders runner files from a list of test groups
type Emitter struct{}

// New creates a new Emitter
func New() *Emitter {
	return &Emitter{}
}

// Render returns the runner source for the flavor. Groups are emitted in the order given.
func (e *Emitter) Render(groups []string, flavor domain.Flavor) ([]byte, error) {
	var buf bytes.Buffer
	err := runnerTemplate.Execute(&buf, runnerData{
		Flavor: flavor.Name,
		Banner: banner,
		Groups: groups,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s runner: %w", flavor.Name, err)
	}
	return buf.Bytes(), nil
}

// Write renders the runner and writes it to dir, replacing any previous file.
// It returns the written path and the number of bytes written.
func (e *Emitter) Write(dir string, groups []string, flavor domain.Flavor) (string, int, error) {
	data, err := e.Render(groups, flavor)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, flavor.OutputFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", 0, fmt.Errorf("write %s: %w", path, err)
	}
	return path, len(data), nil
}
