// Package config loads runtime configuration for the chatedit binaries:
// a YAML file overlaid with .env values and CHATEDIT_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration. Flags in the binaries override
// anything loaded here.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Session struct {
		SchemaPath string `yaml:"schema_path"`
		Document   string `yaml:"document"`
		Renderer   string `yaml:"renderer"`
	} `yaml:"session"`
	Assistant struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"assistant"`
	Theme struct {
		Name    string `yaml:"name"`
		Variant string `yaml:"variant"`
	} `yaml:"theme"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	var cfg Config
	cfg.Server.Addr = ":8484"
	cfg.Session.Renderer = "html"
	cfg.Assistant.Provider = "scripted"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the YAML file at path (optional), then applies .env and
// environment overrides. A missing file is only an error when the path was
// given explicitly.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overlay(&cfg.Server.Addr, "CHATEDIT_ADDR")
	overlay(&cfg.Session.SchemaPath, "CHATEDIT_SCHEMA")
	overlay(&cfg.Session.Renderer, "CHATEDIT_RENDERER")
	overlay(&cfg.Assistant.Provider, "CHATEDIT_PROVIDER")
	overlay(&cfg.Assistant.Model, "CHATEDIT_MODEL")
	overlay(&cfg.Assistant.APIKey, "CHATEDIT_API_KEY")
	overlay(&cfg.Assistant.BaseURL, "CHATEDIT_BASE_URL")
	overlay(&cfg.Theme.Name, "CHATEDIT_THEME")
	overlay(&cfg.Theme.Variant, "CHATEDIT_THEME_VARIANT")
	overlay(&cfg.Log.Level, "CHATEDIT_LOG_LEVEL")
	overlay(&cfg.Log.File, "CHATEDIT_LOG_FILE")
}

func overlay(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
