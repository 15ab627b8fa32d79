package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	commoncfg "github.com/omkarsindha/GSM-Alarm/common/config"
)

// Config labmon-dashboard settings
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr" validate:"required"`
	} `yaml:"http"`
	Backend commoncfg.BackendConfig `yaml:"backend"`
	Redis   commoncfg.RedisConfig   `yaml:"redis"`
	Flash   struct {
		TTL time.Duration `yaml:"ttl" validate:"gt=0"` // how long undelivered flash messages live
	} `yaml:"flash"`
	Log struct {
		Level  string `yaml:"level" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" validate:"oneof=json console"`
	} `yaml:"log"`
}

// Default values before file and environment overrides.
func Default() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = ":8080"
	cfg.Backend.BaseURL = "http://localhost:5000"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Flash.TTL = 5 * time.Minute
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

// Load builds the config: defaults, then the YAML file at path (skipped
// when path is empty), then environment variables, then validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.Backend.LoadFromEnv("BACKEND")
	cfg.Redis.LoadFromEnv("REDIS")
	if v := os.Getenv("FLASH_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FLASH_TTL %q: %w", v, err)
		}
		cfg.Flash.TTL = d
	}
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %s is %s", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path config file location from CONFIG_FILE when flagPath is empty.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv("CONFIG_FILE")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
