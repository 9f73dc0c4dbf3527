package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexiusacademia/gosite/internal/history"
	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEnvFile is the dotenv file read before the environment is parsed
const DefaultEnvFile = ".env"

// Config is the application configuration.
// Values come from defaults, then the YAML file, then GOSITE_* environment variables.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Soil    SoilConfig    `yaml:"soil"`
	Server  ServerConfig  `yaml:"server"`
}

// HistoryConfig locates the CSV history logs
type HistoryConfig struct {
	Dir      string `yaml:"dir" env:"GOSITE_HISTORY_DIR"`
	SoilFile string `yaml:"soil_file" env:"GOSITE_HISTORY_SOIL_FILE"`
	WindFile string `yaml:"wind_file" env:"GOSITE_HISTORY_WIND_FILE"`
	Disabled bool   `yaml:"disabled" env:"GOSITE_HISTORY_DISABLED"`
}

// SoilConfig holds the settlement parameters
type SoilConfig struct {
	YoungModulus    float64 `yaml:"young_modulus" env:"GOSITE_SOIL_YOUNG_MODULUS"`
	AppliedPressure float64 `yaml:"applied_pressure" env:"GOSITE_SOIL_APPLIED_PRESSURE"`
	FoundationWidth float64 `yaml:"foundation_width" env:"GOSITE_SOIL_FOUNDATION_WIDTH"`
	PoissonRatio    float64 `yaml:"poisson_ratio" env:"GOSITE_SOIL_POISSON_RATIO"`
}

// ServerConfig configures the web front end
type ServerConfig struct {
	Addr      string  `yaml:"addr" env:"GOSITE_SERVER_ADDR"`
	RateLimit float64 `yaml:"rate_limit" env:"GOSITE_SERVER_RATE_LIMIT"` // requests per second per client
	Burst     int     `yaml:"burst" env:"GOSITE_SERVER_BURST"`
}

// Default returns the built-in configuration
func Default() *Config {
	p := soil.DefaultParams()
	return &Config{
		History: HistoryConfig{
			Dir:      ".",
			SoilFile: history.DefaultSoilFile,
			WindFile: history.DefaultWindFile,
		},
		Soil: SoilConfig{
			YoungModulus:    p.YoungModulus,
			AppliedPressure: p.AppliedPressure,
			FoundationWidth: p.FoundationWidth,
			PoissonRatio:    p.PoissonRatio,
		},
		Server: ServerConfig{
			Addr:      ":8080",
			RateLimit: 5,
			Burst:     10,
		},
	}
}

// Load builds the configuration. An empty path skips the YAML file; a missing
// dotenv file is not an error.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the physical parameters and server limits
func (c *Config) Validate() error {
	if err := c.SoilParams().Validate(); err != nil {
		return err
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive, got %g", c.Server.RateLimit)
	}
	if c.Server.Burst < 1 {
		return fmt.Errorf("server.burst must be at least 1, got %d", c.Server.Burst)
	}
	return nil
}

// SoilParams returns the settlement parameters for soil.NewModel
func (c *Config) SoilParams() soil.Params {
	return soil.Params{
		AppliedPressure: c.Soil.AppliedPressure,
		FoundationWidth: c.Soil.FoundationWidth,
		YoungModulus:    c.Soil.YoungModulus,
		PoissonRatio:    c.Soil.PoissonRatio,
	}
}

// Recorder returns the history recorder, nil when history is disabled
func (c *Config) Recorder() *history.Recorder {
	if c.History.Disabled {
		return nil
	}
	return history.NewRecorder(c.History.Dir, c.History.SoilFile, c.History.WindFile)
}
