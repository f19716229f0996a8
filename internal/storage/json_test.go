package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fossilgen/internal/config"
	"fossilgen/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	root := t.TempDir()
	cfg := config.New()
	cfg.Root = root
	cfg.ManifestPath = filepath.Join("reports", "fossilgen.json")

	st := NewJSONStorage(cfg)

	results := []domain.GenerationResult{
		{
			Flavor:     domain.FlavorC,
			OutputPath: filepath.Join(root, "unit_runner.c"),
			Groups:     []string{"addition", "concat"},
			Files:      []string{"with_c/test_math.c", "with_c/test_str.c"},
			Bytes:      512,
		},
		{
			Flavor:     domain.FlavorCpp,
			OutputPath: filepath.Join(root, "unit_runner.cpp"),
			Groups:     []string{},
			Files:      []string{},
			Bytes:      400,
		},
	}

	if err := st.SaveManifest(st.BuildManifest(results, 1500*time.Millisecond)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "reports", "fossilgen.json")); err != nil {
		t.Fatalf("expected manifest under the root: %v", err)
	}

	manifest, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if manifest.Meta.TotalFiles != 2 || manifest.Meta.TotalGroups != 2 || manifest.Meta.Flavors != 2 {
		t.Errorf("unexpected meta: %+v", manifest.Meta)
	}
	if manifest.Meta.DurationSeconds != 1.5 {
		t.Errorf("expected 1.5s, got %v", manifest.Meta.DurationSeconds)
	}
	if diff := cmp.Diff(results, manifest.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONStorage_Errors(t *testing.T) {
	t.Run("no manifest path", func(t *testing.T) {
		st := NewJSONStorage(config.New())
		if err := st.SaveManifest(st.BuildManifest(nil, 0)); err == nil {
			t.Error("expected error without a manifest path")
		}
		if _, err := st.Load(); err == nil {
			t.Error("expected error without a manifest path")
		}
	})

	t.Run("missing manifest file", func(t *testing.T) {
		cfg := config.New()
		cfg.ManifestPath = filepath.Join(t.TempDir(), "missing.json")
		if _, err := NewJSONStorage(cfg).Load(); err == nil {
			t.Error("expected error for missing manifest")
		}
	})

	t.Run("corrupt manifest file", func(t *testing.T) {
		cfg := config.New()
		cfg.ManifestPath = filepath.Join(t.TempDir(), "corrupt.json")
		if err := os.WriteFile(cfg.ManifestPath, []byte("{not json"), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		if _, err := NewJSONStorage(cfg).Load(); err == nil {
			t.Error("expected error for corrupt manifest")
		}
	})
}
