package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rowboat.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Dispatcher.Parallelism)
	assert.Equal(t, 16, cfg.Dispatcher.ClaimBatchSize)
	assert.Equal(t, 2, cfg.Dispatcher.MaxRetries)
	assert.Equal(t, 2*time.Minute, cfg.Dispatcher.ReapAfter)
	assert.True(t, cfg.Dispatcher.ReapsPending())

	assert.Equal(t, 5000, cfg.Wrapper.MaxCellLength)
	assert.Contains(t, cfg.Wrapper.BlockedURLHosts, "vertexaisearch.cloud.google.com")

	assert.Equal(t, 0.5, cfg.Validator.LowConfidenceThreshold)
	assert.Equal(t, 0.3, cfg.Validator.RelevanceThreshold)

	assert.Equal(t, "localhost:50061", cfg.Operators.ToolServiceAddr)
	assert.Zero(t, cfg.Retention.AuditMaxAge)
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
dispatcher:
  parallelism: 3
  claim_batch_size: 4
validator:
  low_confidence_threshold: 0.7
operators:
  tool_service_addr: "tools.internal:9000"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Dispatcher.Parallelism)
	assert.Equal(t, 4, cfg.Dispatcher.ClaimBatchSize)
	assert.Equal(t, 0.7, cfg.Validator.LowConfidenceThreshold)
	assert.Equal(t, "tools.internal:9000", cfg.Operators.ToolServiceAddr)

	// unset fields keep their defaults
	assert.Equal(t, 2, cfg.Dispatcher.MaxRetries)
	assert.Equal(t, 0.3, cfg.Validator.RelevanceThreshold)
	assert.Equal(t, 5000, cfg.Wrapper.MaxCellLength)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("ROWBOAT_TOOL_ADDR", "tools.staging:9000")
	dir := writeConfig(t, `
operators:
  tool_service_addr: "{{.ROWBOAT_TOOL_ADDR}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "tools.staging:9000", cfg.Operators.ToolServiceAddr)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	dir := writeConfig(t, `
validator:
  low_confidence_threshold: 1.5
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeRejectsMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "dispatcher: [")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "rowboat.yaml", loadErr.File)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_VALUE", "hello")

	t.Run("substitutes variables", func(t *testing.T) {
		got := ExpandEnv([]byte("key: {{.EXPAND_TEST_VALUE}}"))
		assert.Equal(t, "key: hello", string(got))
	})

	t.Run("missing variable expands to empty", func(t *testing.T) {
		got := ExpandEnv([]byte("key: {{.NO_SUCH_EXPAND_TEST_VAR}}"))
		assert.Equal(t, "key: ", string(got))
	})

	t.Run("dollar signs pass through untouched", func(t *testing.T) {
		in := []byte(`example: "$1,200.50 or $VAR"`)
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("malformed template returns input unchanged", func(t *testing.T) {
		in := []byte("key: {{.unclosed")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
