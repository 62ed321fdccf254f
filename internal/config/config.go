// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Rates  RatesConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `mapstructure:"port"`
	ServeSwagger    bool `mapstructure:"serve_swagger"`
	WriteTimeoutSec int  `mapstructure:"write_timeout_sec"`
}

// SiteConfig describes the static site being served.
type SiteConfig struct {
	StaticDir string `mapstructure:"static_dir"`
	Page      string `mapstructure:"page"`
	Timezone  string `mapstructure:"timezone"`
}

// RatesConfig holds rate board acquisition settings.
type RatesConfig struct {
	APIURL    string `mapstructure:"api_url"` // Remote rates API; empty skips straight to the local file.
	TimeoutMs int    `mapstructure:"timeout_ms"`
	LocalFile string `mapstructure:"local_file"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// Timeout returns the per-fetch deadline.
func (c RatesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Location resolves the display timezone.
func (c SiteConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("RATEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.write_timeout_sec", 30)
	v.SetDefault("site.static_dir", "./web")
	v.SetDefault("site.page", "index.html")
	v.SetDefault("site.timezone", "Local")
	v.SetDefault("rates.api_url", "")
	v.SetDefault("rates.timeout_ms", 8000)
	v.SetDefault("rates.local_file", "rates.json")
	v.SetDefault("log.development", false)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Rates.APIURL = strings.TrimSpace(cfg.Rates.APIURL)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}
	if c.Server.WriteTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout_sec must be positive, got %d", c.Server.WriteTimeoutSec))
	}

	if c.Site.StaticDir == "" {
		errs = append(errs, fmt.Errorf("site.static_dir is required"))
	}
	if c.Site.Page == "" {
		errs = append(errs, fmt.Errorf("site.page is required"))
	}
	if _, err := c.Site.Location(); err != nil {
		errs = append(errs, fmt.Errorf("site.timezone %q: %w", c.Site.Timezone, err))
	}

	if c.Rates.APIURL != "" {
		u, err := url.Parse(c.Rates.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("rates.api_url must be an absolute http(s) URL, got %q (set RATEBOARD_RATES_API_URL)", c.Rates.APIURL))
		}
	}
	if c.Rates.TimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("rates.timeout_ms must be positive, got %d", c.Rates.TimeoutMs))
	}
	if c.Server.WriteTimeoutSec > 0 && c.Rates.TimeoutMs > 0 {
		// A render waits on up to two fetches before it writes.
		worst := 2 * c.Rates.Timeout()
		if write := time.Duration(c.Server.WriteTimeoutSec) * time.Second; write <= worst {
			errs = append(errs, fmt.Errorf("server.write_timeout_sec (%s) must exceed twice rates.timeout_ms (%s)", write, worst))
		}
	}
	if c.Rates.LocalFile == "" {
		errs = append(errs, fmt.Errorf("rates.local_file is required"))
	}

	return errors.Join(errs...)
}
