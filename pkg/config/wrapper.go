package config

// WrapperConfig controls the column-aware wrapper: sanitization limits
// and the pre-write URL blocklist.
type WrapperConfig struct {
	// MaxCellLength truncates cell content before writing.
	MaxCellLength int `yaml:"max_cell_length"`

	// BlockedURLHosts are hosts whose URLs are rejected pre-write.
	// Vendor redirect/tracker hosts belong here: writing them would leak
	// opaque grounding URLs into user data.
	BlockedURLHosts []string `yaml:"blocked_url_hosts"`

	// SimilarTermsLimit is how many similar terms the wrapper joins into
	// a cell for similarity_expansion results.
	SimilarTermsLimit int `yaml:"similar_terms_limit"`
}

// DefaultWrapperConfig returns the built-in wrapper defaults.
func DefaultWrapperConfig() *WrapperConfig {
	return &WrapperConfig{
		MaxCellLength: 5000,
		BlockedURLHosts: []string{
			"vertexaisearch.cloud.google.com",
			"www.google.com",
			"google.com",
		},
		SimilarTermsLimit: 5,
	}
}

// ValidatorConfig holds validation thresholds.
type ValidatorConfig struct {
	// LowConfidenceThreshold is the confidence below which the wrapper
	// requests the single in-process retry.
	LowConfidenceThreshold float64 `yaml:"low_confidence_threshold"`

	// RelevanceThreshold is the title/content keyword overlap below which
	// confidence is lowered (never invalidates on its own).
	RelevanceThreshold float64 `yaml:"relevance_threshold"`
}

// DefaultValidatorConfig returns the built-in validator defaults.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		LowConfidenceThreshold: 0.5,
		RelevanceThreshold:     0.3,
	}
}
