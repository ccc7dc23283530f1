package teammatching

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MetricsConfig configures metric naming.
type MetricsConfig struct {
	// Namespace prefixes every metric name (e.g. "teammatching_engine_rounds_total").
	Namespace string `yaml:"namespace"`
}

// Config is the configuration for the Matcher.
type Config struct {
	// DefaultCapacity is the roster size of teams that do not set their own capacity.
	// Must be positive.
	DefaultCapacity int `yaml:"defaultCapacity"`

	// Parallelism bounds how many team rankings are computed concurrently.
	// Values below 1 are treated as 1.
	Parallelism int `yaml:"parallelism"`

	// SkipStabilityCheck disables the blocking-pair verification after each run.
	// The check is O(players * teams); disable it only for very large inputs.
	SkipStabilityCheck bool `yaml:"skipStabilityCheck"`

	// Metrics configures metric naming.
	Metrics MetricsConfig `yaml:"metrics"`
}

// DefaultConfig returns the default configuration.
//
// Returns:
//   - Config: Configuration with teams of three and four ranking workers
//
// Example:
//
//	cfg := teammatching.DefaultConfig()
//	cfg.DefaultCapacity = 5
//	matcher, err := teammatching.NewMatcher(&cfg, src)
func DefaultConfig() Config {
	return Config{
		DefaultCapacity: 3,
		Parallelism:     4,
		Metrics: MetricsConfig{
			Namespace: "teammatching",
		},
	}
}

// SetDefaults fills zero-valued fields with defaults.
//
// Parameters:
//   - cfg: Configuration to update in place
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.DefaultCapacity == 0 {
		cfg.DefaultCapacity = defaults.DefaultCapacity
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = defaults.Parallelism
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Wrapped ErrInvalidConfig describing the first violation, or nil
func (cfg *Config) Validate() error {
	if cfg.DefaultCapacity <= 0 {
		return fmt.Errorf("%w: DefaultCapacity must be > 0, got %d", ErrInvalidConfig, cfg.DefaultCapacity)
	}

	if cfg.Parallelism < 0 {
		return fmt.Errorf("%w: Parallelism must be >= 0, got %d", ErrInvalidConfig, cfg.Parallelism)
	}

	return nil
}

// ValidateWithWarnings logs settings that are valid but unusual.
//
// Parameters:
//   - logger: Logger receiving the warnings
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.SkipStabilityCheck {
		logger.Warn("stability check disabled, blocking pairs will go undetected")
	}

	if cfg.Parallelism > 64 {
		logger.Warn(
			"Parallelism is very high, ranking is CPU bound",
			"parallelism", cfg.Parallelism,
			"recommended", "number of CPUs",
		)
	}
}

// LoadConfig reads a YAML configuration file, applies defaults and validates it.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration
//   - error: Read, parse, or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file: %v", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// TestConfig returns a configuration suited for tests: small teams and
// sequential ranking for reproducible logs.
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.DefaultCapacity = 2
	cfg.Parallelism = 1
	cfg.Metrics.Namespace = "test"

	return cfg
}
