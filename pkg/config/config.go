package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logger struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logger"`
	Source struct {
		URL          string        `yaml:"url"`    // http(s) URL or local file path
		Schema       string        `yaml:"schema"` // auto, teamcast, or stream
		WindowDays   int           `yaml:"window_days"`
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
		CacheTTL     time.Duration `yaml:"cache_ttl"` // 0 keeps records for the process lifetime
	} `yaml:"source"`
	Cache struct {
		Backend       string `yaml:"backend"` // memory or layered
		MemoryMaxSize int    `yaml:"memory_max_size"`
		Redis         struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("SOURCE_URL"); v != "" {
		c.Source.URL = v
	}
	if v := os.Getenv("SOURCE_SCHEMA"); v != "" {
		c.Source.Schema = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "console"
	}
	if c.Logger.Output == "" {
		c.Logger.Output = "stdout"
	}
	if c.Source.Schema == "" {
		c.Source.Schema = "auto"
	}
	if c.Source.WindowDays == 0 {
		c.Source.WindowDays = 14
	}
	if c.Source.FetchTimeout == 0 {
		c.Source.FetchTimeout = 30 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.Schema != "auto" && c.Source.Schema != "teamcast" && c.Source.Schema != "stream" {
		return fmt.Errorf("source.schema must be 'auto', 'teamcast' or 'stream', got '%s'", c.Source.Schema)
	}
	if c.Source.WindowDays < 0 {
		return fmt.Errorf("source.window_days must be >= 0")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "layered" {
		return fmt.Errorf("cache.backend must be 'memory' or 'layered', got '%s'", c.Cache.Backend)
	}
	return nil
}
