package glyph

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	backend  string
	coverage bool
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		backend:  BackendXImage,
		coverage: true,
	}
}

// WithBackend selects the font backend by name.
// The default is "ximage"; RegisterBackend adds more.
func WithBackend(name string) SourceOption {
	return func(c *sourceConfig) {
		c.backend = name
	}
}

// WithCoverageCheck enables or disables the character map index built with
// go-text/typesetting. When disabled, Missing asks the backend instead.
func WithCoverageCheck(enabled bool) SourceOption {
	return func(c *sourceConfig) {
		c.coverage = enabled
	}
}
