// Package config loads and validates the engine configuration from a
// YAML file with environment variable expansion.
package config

// Config is the umbrella configuration object returned by Initialize()
// and passed to the components that need it.
type Config struct {
	configDir string

	// Dispatcher and queue behavior
	Dispatcher *DispatcherConfig

	// Column-aware wrapper behavior
	Wrapper *WrapperConfig

	// Validator thresholds
	Validator *ValidatorConfig

	// Operator transport and limits
	Operators *OperatorsConfig

	// Background retention sweeps
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
