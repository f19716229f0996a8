package config

const (
	// DefaultRoot is the directory scanned when no root is given
	DefaultRoot = "."
	// DefaultOutputDir is where runners are written, relative to the root
	DefaultOutputDir = "."
	// DefaultDirPrefix marks directories whose files are scanned
	DefaultDirPrefix = "with_"
	// DefaultFilePrefix marks test source files
	DefaultFilePrefix = "test_"
	// DefaultMarker is the macro that declares a test group
	DefaultMarker = "FOSSIL_TEST_GROUP"
	// DefaultConfigFile is picked up from the root when --config is not set
	DefaultConfigFile = "fossilgen.toml"
	// DefaultEnvFile is loaded from the root when present
	DefaultEnvFile = ".env"
	// DefaultManifestFile is the manifest written by a bare --manifest and read by report
	DefaultManifestFile = "fossilgen-manifest.json"
)

const (
	// EnvOutputDir overrides the output directory
	EnvOutputDir = "FOSSILGEN_OUTPUT_DIR"
	// EnvMarker overrides the group marker
	EnvMarker = "FOSSILGEN_MARKER"
)
