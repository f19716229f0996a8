package domain

// GenerationResult describes one flavor pass
type GenerationResult struct {
	Flavor     Flavor   `json:"flavor"`
	OutputPath string   `json:"output_path"`
	Groups     []string `json:"groups"`
	Files      []string `json:"files"`
	Bytes      int      `json:"bytes"`
}

// ManifestMeta contains metadata about a generation run
type ManifestMeta struct {
	Root            string  `json:"root"`
	OutputDir       string  `json:"output_dir"`
	Flavors         int     `json:"flavors"`
	TotalFiles      int     `json:"total_files"`
	TotalGroups     int     `json:"total_groups"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// Manifest is the complete report of a generation run
type Manifest struct {
	Meta    ManifestMeta       `json:"meta"`
	Results []GenerationResult `json:"results"`
}
