package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := parseConfig([]byte(`
trusted-registries:
  - registry.example.com
trusted-namespaces:
  - acme
curated-registries:
  - registry.example.com
recency-window-days: 30
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"registry.example.com"}, c.TrustedRegistries)
	assert.Equal(t, []string{"acme"}, c.TrustedNamespaces)
	assert.Equal(t, 30, c.RecencyWindowDays)
	// unset fields keep defaults
	assert.Equal(t, DefaultApproveThreshold, c.ApproveThreshold)
	assert.Equal(t, DefaultReviewThreshold, c.ReviewThreshold)
	assert.Equal(t, DefaultStaleWindowDays, c.StaleWindowDays)
}

func TestConfigValidation(t *testing.T) {
	_, err := parseConfig([]byte("approve-threshold: 101"))
	require.ErrorContains(t, err, "approve threshold out of range: 101")

	_, err = parseConfig([]byte("review-threshold: 90"))
	require.ErrorContains(t, err, "review threshold must be positive and below approve threshold: 90")

	_, err = parseConfig([]byte("recency-window-days: -1"))
	require.ErrorContains(t, err, "recency window must be positive: -1")

	_, err = parseConfig([]byte("stale-window-days: 10"))
	require.ErrorContains(t, err, "stale window must exceed recency window")

	_, err = parseConfig([]byte("trusted-registries: [\"\"]"))
	require.ErrorContains(t, err, "trusted registry entry is empty")

	// multiple errors are joined
	_, err = parseConfig([]byte("approve-threshold: 101\nrecency-window-days: -1"))
	require.ErrorContains(t, err, "approve threshold out of range")
	require.ErrorContains(t, err, "recency window must be positive")
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("signal-timeout-seconds: 5"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.SignalTimeout())
}

func TestSignalTimeoutDefault(t *testing.T) {
	assert.Equal(t, DefaultSignalTimeout, Config{}.SignalTimeout())
}
