package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fossilgen/internal/domain"
)

// BuildManifest summarizes generation results into a manifest
func (s *JSONStorage) BuildManifest(results []domain.GenerationResult, duration time.Duration) *domain.Manifest {
	files := 0
	groups := 0
	for _, r := range results {
		files += len(r.Files)
		groups += len(r.Groups)
	}

	return &domain.Manifest{
		Meta: domain.ManifestMeta{
			Root:            s.cfg.Root,
			OutputDir:       s.cfg.GetOutputDir(),
			Flavors:         len(results),
			TotalFiles:      files,
			TotalGroups:     groups,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Results: results,
	}
}

// SaveManifest writes a prepared manifest to the configured path.
func (s *JSONStorage) SaveManifest(manifest *domain.Manifest) error {
	path := s.cfg.GetManifestPath()
	if path == "" {
		return fmt.Errorf("no manifest path configured")
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads the manifest from the configured path.
func (s *JSONStorage) Load() (*domain.Manifest, error) {
	path := s.cfg.GetManifestPath()
	if path == "" {
		return nil, fmt.Errorf("no manifest path configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest file: %w", err)
	}
	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &manifest, nil
}
