package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rowboatYAMLConfig represents the complete rowboat.yaml file structure.
type rowboatYAMLConfig struct {
	Dispatcher *DispatcherConfig `yaml:"dispatcher"`
	Wrapper    *WrapperConfig    `yaml:"wrapper"`
	Validator  *ValidatorConfig  `yaml:"validator"`
	Operators  *OperatorsConfig  `yaml:"operators"`
	Retention  *RetentionConfig  `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read rowboat.yaml from configDir (missing file → all defaults)
//  2. Expand environment variables
//  3. Parse YAML, merge each section over built-in defaults
//  4. Validate the result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"parallelism", cfg.Dispatcher.Parallelism,
		"claim_batch_size", cfg.Dispatcher.ClaimBatchSize,
		"tool_service_addr", cfg.Operators.ToolServiceAddr)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{
		configDir:  configDir,
		Dispatcher: DefaultDispatcherConfig(),
		Wrapper:    DefaultWrapperConfig(),
		Validator:  DefaultValidatorConfig(),
		Operators:  DefaultOperatorsConfig(),
		Retention:  DefaultRetentionConfig(),
	}

	path := filepath.Join(configDir, "rowboat.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No rowboat.yaml found, using built-in defaults", "path", path)
			return cfg, nil
		}
		return nil, NewLoadError("rowboat.yaml", err)
	}

	expanded := ExpandEnv(data)

	var fileCfg rowboatYAMLConfig
	if err := yaml.Unmarshal(expanded, &fileCfg); err != nil {
		return nil, NewLoadError("rowboat.yaml", fmt.Errorf("%w: %w", ErrInvalidYAML, err))
	}

	mergeDispatcher(cfg.Dispatcher, fileCfg.Dispatcher)
	mergeWrapper(cfg.Wrapper, fileCfg.Wrapper)
	mergeValidator(cfg.Validator, fileCfg.Validator)
	mergeOperators(cfg.Operators, fileCfg.Operators)
	mergeRetention(cfg.Retention, fileCfg.Retention)

	return cfg, nil
}

// merge helpers: user YAML overrides built-in defaults, unset fields keep
// the default.

func mergeDispatcher(dst, src *DispatcherConfig) {
	if src == nil {
		return
	}
	if src.Parallelism > 0 {
		dst.Parallelism = src.Parallelism
	}
	if src.PollInterval > 0 {
		dst.PollInterval = src.PollInterval
	}
	if src.PollIntervalJitter > 0 {
		dst.PollIntervalJitter = src.PollIntervalJitter
	}
	if src.ClaimBatchSize > 0 {
		dst.ClaimBatchSize = src.ClaimBatchSize
	}
	if src.MaxRetries >= 0 {
		dst.MaxRetries = src.MaxRetries
	}
	if src.EventTimeout > 0 {
		dst.EventTimeout = src.EventTimeout
	}
	if src.ReapInterval > 0 {
		dst.ReapInterval = src.ReapInterval
	}
	if src.ReapAfter > 0 {
		dst.ReapAfter = src.ReapAfter
	}
	if src.ReapPending != nil {
		dst.ReapPending = src.ReapPending
	}
	if src.GracefulShutdownTimeout > 0 {
		dst.GracefulShutdownTimeout = src.GracefulShutdownTimeout
	}
}

func mergeWrapper(dst, src *WrapperConfig) {
	if src == nil {
		return
	}
	if src.MaxCellLength > 0 {
		dst.MaxCellLength = src.MaxCellLength
	}
	if len(src.BlockedURLHosts) > 0 {
		dst.BlockedURLHosts = src.BlockedURLHosts
	}
	if src.SimilarTermsLimit > 0 {
		dst.SimilarTermsLimit = src.SimilarTermsLimit
	}
}

func mergeValidator(dst, src *ValidatorConfig) {
	if src == nil {
		return
	}
	if src.LowConfidenceThreshold > 0 {
		dst.LowConfidenceThreshold = src.LowConfidenceThreshold
	}
	if src.RelevanceThreshold > 0 {
		dst.RelevanceThreshold = src.RelevanceThreshold
	}
}

func mergeOperators(dst, src *OperatorsConfig) {
	if src == nil {
		return
	}
	if src.ToolServiceAddr != "" {
		dst.ToolServiceAddr = src.ToolServiceAddr
	}
	if src.InvokeTimeout > 0 {
		dst.InvokeTimeout = src.InvokeTimeout
	}
	if src.RateLimitRPS > 0 {
		dst.RateLimitRPS = src.RateLimitRPS
	}
	if src.RateLimitBurst > 0 {
		dst.RateLimitBurst = src.RateLimitBurst
	}
}

func mergeRetention(dst, src *RetentionConfig) {
	if src == nil {
		return
	}
	if src.AuditMaxAge > 0 {
		dst.AuditMaxAge = src.AuditMaxAge
	}
	if src.SweepInterval > 0 {
		dst.SweepInterval = src.SweepInterval
	}
}

func validate(cfg *Config) error {
	if cfg.Dispatcher.Parallelism < 1 {
		return fmt.Errorf("%w: dispatcher.parallelism must be >= 1", ErrInvalidValue)
	}
	if cfg.Dispatcher.ClaimBatchSize < 1 {
		return fmt.Errorf("%w: dispatcher.claim_batch_size must be >= 1", ErrInvalidValue)
	}
	if cfg.Dispatcher.MaxRetries < 0 {
		return fmt.Errorf("%w: dispatcher.max_retries must be >= 0", ErrInvalidValue)
	}
	if cfg.Dispatcher.ReapAfter < cfg.Dispatcher.EventTimeout {
		return fmt.Errorf("%w: dispatcher.reap_after must be >= dispatcher.event_timeout", ErrInvalidValue)
	}
	if cfg.Validator.LowConfidenceThreshold < 0 || cfg.Validator.LowConfidenceThreshold > 1 {
		return fmt.Errorf("%w: validator.low_confidence_threshold must be in [0,1]", ErrInvalidValue)
	}
	if cfg.Operators.ToolServiceAddr == "" {
		return fmt.Errorf("%w: operators.tool_service_addr must not be empty", ErrInvalidValue)
	}
	return nil
}
