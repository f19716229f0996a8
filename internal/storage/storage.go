package storage

import (
	"fossilgen/internal/config"
	"fossilgen/internal/domain"
)

// Storage persists and loads generation manifests (e.g. for the report command).
type Storage interface {
	SaveManifest(manifest *domain.Manifest) error
	Load() (*domain.Manifest, error)
}

// JSONStorage stores manifests in a JSON file at the configured manifest path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's manifest path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
