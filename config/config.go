// Package config resolves runtime settings: built-in defaults, then an optional
// YAML file named by LICENSE_TRACKER_CONFIG, then LICENSE_TRACKER_* env vars.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

const envPrefix = "LICENSE_TRACKER_"

// Record source kinds.
const (
	SourceHTTP = "http"
	SourceSQL  = "sql"
)

// Config defines server configuration.
type Config struct {
	Server   ServerConfig         `yaml:"server"`
	Source   SourceConfig         `yaml:"source"`
	Display  DisplayConfig        `yaml:"display"`
	Capacity models.CapacityTable `yaml:"capacity"`
	Cache    CacheConfig          `yaml:"cache"`
	Refresh  RefreshConfig        `yaml:"refresh"`
	Auth     AuthConfig           `yaml:"auth"`
	Log      LogConfig            `yaml:"log"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type SourceConfig struct {
	Kind      string        `yaml:"kind"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	DBDriver  string        `yaml:"db_driver"`
	DSN       string        `yaml:"dsn"`
	Analytics string        `yaml:"analytics"`
}

type DisplayConfig struct {
	Timezone       string `yaml:"timezone"`
	DateTimeLayout string `yaml:"datetime_layout"`
}

type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

type RefreshConfig struct {
	// Interval between background dashboard refreshes. Zero disables them.
	Interval time.Duration `yaml:"interval"`
}

type AuthConfig struct {
	// JWTSecret enables bearer-token auth on the API when set.
	JWTSecret string `yaml:"jwt_secret"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Source: SourceConfig{
			Kind:      SourceHTTP,
			BaseURL:   "http://localhost:5000",
			Timeout:   15 * time.Second,
			DBDriver:  "sqlite",
			DSN:       "./license_tracker.db",
			Analytics: "local",
		},
		Display: DisplayConfig{
			Timezone:       utils.DefaultTimezone,
			DateTimeLayout: utils.DefaultDateTimeLayout,
		},
		Capacity: models.DefaultCapacity(),
		Cache: CacheConfig{
			Size: len(models.Systems),
			TTL:  time.Minute,
		},
		Refresh: RefreshConfig{
			Interval: 5 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   "./logs",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	defaults := cfg.Capacity
	cfg.Capacity = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	cfg.Capacity = mergeCapacity(defaults, cfg.Capacity)
	return nil
}

// mergeCapacity overlays file entries on the defaults. Keys are matched case-insensitively.
func mergeCapacity(base, override models.CapacityTable) models.CapacityTable {
	out := make(models.CapacityTable, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		sys, err := models.ParseSystem(string(k))
		if err != nil {
			sys = k
		}
		cur := out[sys]
		if v.Total != 0 {
			cur.Total = v.Total
		}
		if v.Color != "" {
			cur.Color = v.Color
		}
		out[sys] = cur
	}
	return out
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Host, "SERVER_HOST")
	if err := setInt(&cfg.Server.Port, "SERVER_PORT"); err != nil {
		return err
	}

	setString(&cfg.Source.Kind, "SOURCE_KIND")
	setString(&cfg.Source.BaseURL, "SOURCE_BASE_URL")
	if err := setDuration(&cfg.Source.Timeout, "SOURCE_TIMEOUT"); err != nil {
		return err
	}
	setString(&cfg.Source.DBDriver, "DB_DRIVER")
	setString(&cfg.Source.DSN, "DB_DSN")
	setString(&cfg.Source.Analytics, "ANALYTICS")

	setString(&cfg.Display.Timezone, "TIMEZONE")
	setString(&cfg.Display.DateTimeLayout, "DATETIME_LAYOUT")

	if err := setInt(&cfg.Cache.Size, "CACHE_SIZE"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Cache.TTL, "CACHE_TTL"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Refresh.Interval, "REFRESH_INTERVAL"); err != nil {
		return err
	}

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Dir, "LOG_DIR")

	cfg.Source.Kind = strings.ToLower(strings.TrimSpace(cfg.Source.Kind))
	cfg.Source.Analytics = strings.ToLower(strings.TrimSpace(cfg.Source.Analytics))
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceHTTP:
		if c.Source.BaseURL == "" {
			return fmt.Errorf("source.base_url is required for the http source")
		}
	case SourceSQL:
		if c.Source.DSN == "" {
			return fmt.Errorf("source.dsn is required for the sql source")
		}
	default:
		return fmt.Errorf("unsupported source kind %q", c.Source.Kind)
	}

	switch c.Source.Analytics {
	case "local", "upstream":
	default:
		return fmt.Errorf("unsupported analytics mode %q", c.Source.Analytics)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Display.Timezone != utils.DefaultTimezone {
		if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
			return fmt.Errorf("invalid display timezone: %w", err)
		}
	}
	return nil
}

func setString(dst *string, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) error {
	raw := os.Getenv(envPrefix + name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = v
	return nil
}

func setDuration(dst *time.Duration, name string) error {
	raw := os.Getenv(envPrefix + name)
	if raw == "" {
		return nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = v
	return nil
}
