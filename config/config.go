package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
	haconfig "github.com/elC0mpa/ha-doctor/service/homeassistant/config"
	"github.com/joho/godotenv"
)

const (
	BaseURLEnv             = "HA_BASE_URL"
	AccessTokenEnv         = "HA_ACCESS_TOKEN"
	TimeoutEnv             = "HA_TIMEOUT"
	PlatformThresholdEnv   = "HA_DOCTOR_PLATFORM_THRESHOLD"
	UnassignedThresholdEnv = "HA_DOCTOR_UNASSIGNED_THRESHOLD"
	DebugEnv               = "HA_DOCTOR_DEBUG"

	defaultTimeout = 30 * time.Second
)

// Config holds environment-based configuration
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	Debug       bool

	// Suggestion thresholds
	PlatformThreshold   int
	UnassignedThreshold int
}

// LoadEnvFile loads a .env file from the working directory when one exists.
// It reports whether a file was loaded.
func LoadEnvFile() bool {
	return godotenv.Load() == nil
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	defaults := analyzer.DefaultOptions()

	return &Config{
		BaseURL:             os.Getenv(BaseURLEnv),
		AccessToken:         os.Getenv(AccessTokenEnv),
		Timeout:             getEnvDuration(TimeoutEnv, defaultTimeout),
		Debug:               getEnvBool(DebugEnv, false),
		PlatformThreshold:   getEnvInt(PlatformThresholdEnv, defaults.PlatformReviewThreshold),
		UnassignedThreshold: getEnvInt(UnassignedThresholdEnv, defaults.UnassignedThreshold),
	}
}

// ApplyFlags overrides the environment values with the ones set on the command line
func (c *Config) ApplyFlags(flags model.Flags) {
	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.Token != "" {
		c.AccessToken = flags.Token
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.Debug {
		c.Debug = true
	}
}

// Validate fails when the instance cannot be reached with this configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%s: %w", BaseURLEnv, haconfig.ErrMissingBaseURL)
	}
	if c.AccessToken == "" {
		return fmt.Errorf("%s: %w", AccessTokenEnv, haconfig.ErrMissingAccessToken)
	}
	return nil
}

// AnalyzerOptions returns the suggestion options for this configuration
func (c *Config) AnalyzerOptions() analyzer.Options {
	opts := analyzer.DefaultOptions()
	opts.PlatformReviewThreshold = c.PlatformThreshold
	opts.UnassignedThreshold = c.UnassignedThreshold
	return opts
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration accepts Go durations ("15s") and plain seconds ("15")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
