package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config drives the console: where the backend lives and how the roster view
// behaves. Missing fields fall back to defaults, so an empty file is valid.
type Config struct {
	BaseURL        string   `yaml:"baseUrl"`
	PageSize       int      `yaml:"pageSize"`
	RequestTimeout Duration `yaml:"requestTimeout"`
	AutoCloseDelay Duration `yaml:"autoCloseDelay"`
}

func Default() *Config {
	return &Config{
		BaseURL:        "http://localhost:8080",
		PageSize:       10,
		RequestTimeout: Duration(30 * time.Second),
		AutoCloseDelay: Duration(1500 * time.Millisecond),
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = Default().PageSize
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = Default().RequestTimeout
	}
	if cfg.AutoCloseDelay <= 0 {
		cfg.AutoCloseDelay = Default().AutoCloseDelay
	}
	return cfg, nil
}

// Duration parses "30s" style YAML values into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }
