package config

import "time"

// OperatorsConfig holds tool-service transport settings shared by the
// six operator adapters.
type OperatorsConfig struct {
	// ToolServiceAddr is the gRPC address of the tool service that hosts
	// the vendor API calls.
	ToolServiceAddr string `yaml:"tool_service_addr"`

	// InvokeTimeout is the per-call deadline for one operator invocation.
	InvokeTimeout time.Duration `yaml:"invoke_timeout"`

	// RateLimitRPS / RateLimitBurst feed the client-side token bucket.
	// Vendor-side limits still surface as operator errors on exhaustion.
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// DefaultOperatorsConfig returns the built-in operator defaults.
func DefaultOperatorsConfig() *OperatorsConfig {
	return &OperatorsConfig{
		ToolServiceAddr: "localhost:50061",
		InvokeTimeout:   45 * time.Second,
		RateLimitRPS:    4,
		RateLimitBurst:  8,
	}
}

// RetentionConfig holds background retention sweep settings.
type RetentionConfig struct {
	// AuditMaxAge deletes sheet_updates rows older than this.
	// Zero disables the sweep (the audit log is retained indefinitely).
	AuditMaxAge time.Duration `yaml:"audit_max_age"`

	// SweepInterval is how often the retention sweep runs when enabled.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AuditMaxAge:   0,
		SweepInterval: 1 * time.Hour,
	}
}
