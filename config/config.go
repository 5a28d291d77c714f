package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

const ConfigFilename = "imagegate.yaml"

// Defaults for fields left unset in the config file.
const (
	DefaultRecencyWindowDays = 90
	DefaultStaleWindowDays   = 365
	DefaultApproveThreshold  = 80
	DefaultReviewThreshold   = 50
	DefaultSignalTimeout     = 30 * time.Second
)

// Config carries all externally supplied evaluation inputs: trust sets
// and thresholds. It is passed by value into the evaluator so a run can
// never observe mutation.
type Config struct {
	// TrustedRegistries are hosts whose entire catalog is presumed
	// curated; an exact host match awards full vendor trust.
	TrustedRegistries []string `json:"trusted-registries,omitempty"`
	// TrustedNamespaces are publishing organizations trusted across
	// registries; exact match only.
	TrustedNamespaces []string `json:"trusted-namespaces,omitempty"`
	// CuratedRegistries get flat adoption credit; usually a subset of
	// TrustedRegistries but configured independently.
	CuratedRegistries []string `json:"curated-registries,omitempty"`

	RecencyWindowDays int `json:"recency-window-days,omitempty"`
	StaleWindowDays   int `json:"stale-window-days,omitempty"`
	ApproveThreshold  int `json:"approve-threshold,omitempty"`
	ReviewThreshold   int `json:"review-threshold,omitempty"`

	SignalTimeoutSeconds int `json:"signal-timeout-seconds,omitempty"`
}

// SignalTimeout is the per-capability deadline for a single signal.
func (c Config) SignalTimeout() time.Duration {
	if c.SignalTimeoutSeconds <= 0 {
		return DefaultSignalTimeout
	}
	return time.Duration(c.SignalTimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		RecencyWindowDays: DefaultRecencyWindowDays,
		StaleWindowDays:   DefaultStaleWindowDays,
		ApproveThreshold:  DefaultApproveThreshold,
		ReviewThreshold:   DefaultReviewThreshold,
	}
}

func validateConfig(c *Config) error {
	var validationErrors []error
	if c.ApproveThreshold <= 0 || c.ApproveThreshold > 100 {
		validationErrors = append(validationErrors, fmt.Errorf("approve threshold out of range: %d", c.ApproveThreshold))
	}
	if c.ReviewThreshold <= 0 || c.ReviewThreshold >= c.ApproveThreshold {
		validationErrors = append(validationErrors, fmt.Errorf("review threshold must be positive and below approve threshold: %d", c.ReviewThreshold))
	}
	if c.RecencyWindowDays <= 0 {
		validationErrors = append(validationErrors, fmt.Errorf("recency window must be positive: %d", c.RecencyWindowDays))
	}
	if c.StaleWindowDays <= c.RecencyWindowDays {
		validationErrors = append(validationErrors, fmt.Errorf("stale window must exceed recency window: %d", c.StaleWindowDays))
	}
	for _, host := range c.TrustedRegistries {
		if host == "" {
			validationErrors = append(validationErrors, errors.New("trusted registry entry is empty"))
		}
	}
	for _, ns := range c.TrustedNamespaces {
		if ns == "" {
			validationErrors = append(validationErrors, errors.New("trusted namespace entry is empty"))
		}
	}
	for _, host := range c.CuratedRegistries {
		if host == "" {
			validationErrors = append(validationErrors, errors.New("curated registry entry is empty"))
		}
	}

	if len(validationErrors) > 0 {
		return errors.Join(validationErrors...)
	}

	return nil
}

func parseConfig(data []byte) (Config, error) {
	c := Default()
	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	err = validateConfig(&c)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	return c, nil
}

// Load reads the config file at path, falling back to defaults when path
// is empty.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return parseConfig(data)
}
