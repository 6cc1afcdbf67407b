package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/utils"
)

const (
	BackendFile   = "file"
	BackendSQL    = "sql"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	devConnectionString = "file:./local.db?cache=shared&mode=rwc"
)

type Config struct {
	LogLevel         string      `toml:"log_level"`
	Timezone         string      `toml:"timezone"`
	DailyCalorieGoal int         `toml:"daily_calorie_goal"`
	Store            StoreConfig `toml:"store"`
}

type StoreConfig struct {
	Backend          string `toml:"backend"`
	Path             string `toml:"path"`              // Directory for the file backend.
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	RedisURL         string `toml:"redis_url"`
}

func Default() *Config {
	return &Config{
		LogLevel:         "info",
		Timezone:         "Local",
		DailyCalorieGoal: models.DefaultCalorieGoal,
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    filepath.Join("~", ".config", "fittrack"),
		},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the configuration from path (the default location when
// empty). A missing file is not an error; defaults apply. Environment
// variables, optionally from a .env file, override the file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("Failed to parse config %s: %w", path, err)
	}

	// A missing .env is fine.
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		cfg.Store.Backend = BackendSQL
		cfg.Store.ConnectionString = url
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		cfg.Store.Backend = BackendRedis
		cfg.Store.RedisURL = url
	}
	if level := os.Getenv("FITTRACK_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Store.Backend = BackendSQL
		cfg.Store.ConnectionString = devConnectionString
	}
}

func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendFile:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the file backend")
		}
	case BackendSQL:
		if c.Store.ConnectionString == "" {
			return errors.New("store.connection_string is required for the sql backend")
		}
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return errors.New("store.redis_url is required for the redis backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.DailyCalorieGoal <= 0 {
		return fmt.Errorf("daily_calorie_goal must be positive, got %d", c.DailyCalorieGoal)
	}
	if _, err := utils.LoadLocation(c.Timezone); err != nil {
		return err
	}
	return nil
}
