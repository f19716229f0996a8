package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fossilgen/internal/domain"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Scan settings
	Root       string
	DirPrefix  string
	FilePrefix string
	Marker     string

	// Output settings
	OutputDir    string
	ManifestPath string

	// Targets, generated in order
	Flavors []domain.Flavor

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Root       string
	OutputDir  string
	ConfigFile string
	Only       string
	Manifest   string
	Quiet      bool
	NameFilter string
	GroupsOnly bool
	Flavor     string
}

// fileConfig mirrors the optional TOML config file
type fileConfig struct {
	DirPrefix  string          `toml:"dir_prefix"`
	FilePrefix string          `toml:"file_prefix"`
	Marker     string          `toml:"marker"`
	OutputDir  string          `toml:"output_dir"`
	Flavors    []domain.Flavor `toml:"flavor"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Root:       DefaultRoot,
		DirPrefix:  DefaultDirPrefix,
		FilePrefix: DefaultFilePrefix,
		Marker:     DefaultMarker,
		OutputDir:  DefaultOutputDir,
		Flavors:    domain.DefaultFlavors(),
	}
}

// Load creates a config and applies, in order, the config file, the environment and the flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.Root != "" {
		cfg.Root = flags.Root
	}

	configFile := flags.ConfigFile
	if configFile == "" {
		candidate := filepath.Join(cfg.Root, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}

	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}
	if flags.Manifest != "" {
		cfg.ManifestPath = flags.Manifest
	}
	if flags.Only != "" {
		flavor, err := cfg.FindFlavor(flags.Only)
		if err != nil {
			return nil, err
		}
		cfg.Flavors = []domain.Flavor{flavor}
	}

	return cfg, cfg.Validate()
}

// LoadFile applies settings from a TOML config file
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if fc.DirPrefix != "" {
		c.DirPrefix = fc.DirPrefix
	}
	if fc.FilePrefix != "" {
		c.FilePrefix = fc.FilePrefix
	}
	if fc.Marker != "" {
		c.Marker = fc.Marker
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if len(fc.Flavors) > 0 {
		c.Flavors = fc.Flavors
	}
	return nil
}

// LoadEnv loads the root's .env file, if any, and applies environment overrides
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.Root, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
	if marker := os.Getenv(EnvMarker); marker != "" {
		c.Marker = marker
	}
	return nil
}

// Validate checks that the config can drive a generation run
func (c *Config) Validate() error {
	if c.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	if len(c.Flavors) == 0 {
		return fmt.Errorf("no flavors configured")
	}
	seen := make(map[string]bool)
	for _, flavor := range c.Flavors {
		if flavor.Extension == "" || flavor.OutputFile == "" {
			return fmt.Errorf("flavor %q needs both an extension and an output file", flavor.Name)
		}
		if seen[flavor.OutputFile] {
			return fmt.Errorf("output file %s is used by more than one flavor", flavor.OutputFile)
		}
		seen[flavor.OutputFile] = true
	}
	return nil
}

// FindFlavor looks up a flavor by name or by extension, so "c++", "cpp" and ".cpp" all match C++
func (c *Config) FindFlavor(key string) (domain.Flavor, error) {
	normalized := strings.ToLower(strings.TrimPrefix(key, "."))
	for _, flavor := range c.Flavors {
		if strings.ToLower(flavor.Name) == normalized ||
			strings.ToLower(strings.TrimPrefix(flavor.Extension, ".")) == normalized {
			return flavor, nil
		}
	}
	return domain.Flavor{}, fmt.Errorf("unknown flavor: %s", key)
}

// GetOutputDir returns the directory runners are written to.
// A relative output dir is resolved against the root.
func (c *Config) GetOutputDir() string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(c.Root, c.OutputDir)
}

// GetManifestPath returns the manifest path, resolved against the root when relative
func (c *Config) GetManifestPath() string {
	if c.ManifestPath == "" || filepath.IsAbs(c.ManifestPath) {
		return c.ManifestPath
	}
	return filepath.Join(c.Root, c.ManifestPath)
}
