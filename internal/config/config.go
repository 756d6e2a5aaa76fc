package config

import (
	"os"
	"strconv"

	"hirelens/domain/hiring"
	"hirelens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Output OutputConfig
}

// DataConfig holds input data settings
type DataConfig struct {
	// InputFile is the CSV (or XLSX) of relative hiring rates:
	// one country row, one column per year 2018-2023.
	InputFile string
	// ExpectedCountries is the country count the dataset should carry.
	// A mismatch is logged, not fatal.
	ExpectedCountries int
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	// Dir receives the four chart PNGs and the markdown/HTML reports.
	Dir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			InputFile:         getEnvOrDefault("HIRING_DATA_FILE", "data/ai_hiring_rates.csv"),
			ExpectedCountries: getEnvIntOrDefault("EXPECTED_COUNTRIES", hiring.DefaultExpectedCountries),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("OUTPUT_DIR", "output"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.InputFile == "" {
		return errors.ConfigInvalid("input data file is required")
	}
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Data.ExpectedCountries <= 0 {
		return errors.ConfigInvalid("expected country count must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
