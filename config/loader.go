package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from the
// default search paths.
func LoadAppConfig() error {
	paths := []string{"config.yml", "/etc/route-chat/config.yml"}
	var lastErr error
	for _, p := range paths {
		err := LoadAppConfigFrom(p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// LoadAppConfigFrom loads and validates the configuration file at path and
// installs it as the global Config.
func LoadAppConfigFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}
	if cfg.Dataset.Path == "" && cfg.Dataset.URL == "" {
		return fmt.Errorf("%s: dataset.path or dataset.url must be set", path)
	}
	applyDefaults(&cfg)
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Dataset.TimeoutMS == 0 {
		cfg.Dataset.TimeoutMS = 10000
	}
	if cfg.Normalizer.FuzzyThreshold == 0 {
		cfg.Normalizer.FuzzyThreshold = 0.6
	}
	if cfg.Extractor.Model == "" {
		cfg.Extractor.Model = "gpt-4o-mini"
	}
	if cfg.Extractor.APIKeyEnv == "" {
		cfg.Extractor.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Extractor.TimeoutMS == 0 {
		cfg.Extractor.TimeoutMS = 20000
	}
	if cfg.Extractor.RatePerMinute == 0 {
		cfg.Extractor.RatePerMinute = 12
	}
	if cfg.Extractor.Burst == 0 {
		cfg.Extractor.Burst = 3
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Cache.CleanupSeconds == 0 {
		cfg.Cache.CleanupSeconds = 600
	}
}
