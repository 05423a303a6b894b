package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanbo/internal/config/colors"
)

const (
	// DefaultAPIURL is used when neither the config file nor KANBO_API_URL set one
	DefaultAPIURL = "http://localhost:4000"

	// DefaultRequestTimeout of zero leaves requests bounded only by their context
	DefaultRequestTimeout time.Duration = 0

	DefaultLogLevel = "info"
)

// Environment overrides
const (
	EnvAPIURL    = "KANBO_API_URL"
	EnvStorage   = "KANBO_STORAGE"
	EnvRedisAddr = "KANBO_REDIS_ADDR"
	EnvThemeFile = "KANBO_THEME_FILE"
	EnvLogLevel  = "KANBO_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	APIURL         string             `yaml:"api_url"`
	RequestTimeout time.Duration      `yaml:"request_timeout"`
	LogLevel       string             `yaml:"log_level"`
	Storage        StorageConfig      `yaml:"storage"`
	KeyMappings    KeyMappings        `yaml:"key_mappings"`
	ColorScheme    colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where the token and user data are persisted
type StorageConfig struct {
	Backend   string `yaml:"backend"` // file, sqlite, redis, memory
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from KANBO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with environment variables
func applyEnv(config *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		config.APIURL = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		config.Storage.Backend = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		config.Storage.RedisAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return finish(&Config{}), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, returning defaults when it does not exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return finish(&Config{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return finish(&config), nil
}

func finish(config *Config) *Config {
	loadThemeFile(config)
	applyEnv(config)
	config.applyDefaults()
	return config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as yaml to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// SettableKeys lists the keys Set accepts
var SettableKeys = []string{
	"api_url",
	"log_level",
	"request_timeout",
	"storage.backend",
	"storage.path",
	"storage.redis_addr",
	"storage.redis_db",
	"storage.namespace",
	"theme.preset",
}

// Set updates a single top-level setting by its yaml key
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = value
	case "log_level":
		c.LogLevel = value
	case "request_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid request_timeout %q: %w", value, err)
		}
		c.RequestTimeout = d
	case "storage.backend":
		c.Storage.Backend = value
	case "storage.path":
		c.Storage.Path = value
	case "storage.redis_addr":
		c.Storage.RedisAddr = value
	case "storage.redis_db":
		db, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid storage.redis_db %q: %w", value, err)
		}
		c.Storage.RedisDB = db
	case "storage.namespace":
		c.Storage.Namespace = value
	case "theme.preset":
		c.ColorScheme = colors.ColorScheme{Preset: value}
		c.ColorScheme.ApplyDefaults()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Edit changes one key of the config file at path and saves it.
// Defaults and environment overrides are left out of what is written.
func Edit(path, key, value string) error {
	var config Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := config.Set(key, value); err != nil {
		return err
	}
	return config.SaveTo(path)
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanbo", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanbo", "config.yaml"), nil
}

// DataDir returns ~/.kanbo, where storage and logs live
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".kanbo"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.RequestTimeout < 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.Storage.applyDefaults()
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = "file"
	}
	if s.Namespace == "" {
		s.Namespace = "default"
	}
	if s.RedisAddr == "" {
		s.RedisAddr = "localhost:6379"
	}
	if s.Path != "" {
		return
	}
	dir, err := DataDir()
	if err != nil {
		return
	}
	switch s.Backend {
	case "sqlite":
		s.Path = filepath.Join(dir, "kanbo.db")
	case "file":
		s.Path = filepath.Join(dir, "storage.yaml")
	}
}
