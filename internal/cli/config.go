package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/boardwalk/internal/factory"
	redisstorage "github.com/mcoot/boardwalk/internal/storage/redis"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration. Values come from flags, then the
// environment, then an optional .env file.
type Config struct {
	Storage  string `env:"BOARDWALK_STORAGE" envDefault:"memory"`
	RedisURL string `env:"BOARDWALK_REDIS_URL" envDefault:"redis://localhost:6379"`
	Output   string `env:"BOARDWALK_OUTPUT" envDefault:"text"`
	LogLevel string `env:"BOARDWALK_LOG_LEVEL" envDefault:"warn"`
	Seed     uint64 `env:"BOARDWALK_SEED"`

	// EnvFile is only settable by flag
	EnvFile string `env:"-"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage:  factory.StorageTypeMemory,
		RedisURL: "redis://localhost:6379",
		Output:   FormatText,
		LogLevel: "warn",
		EnvFile:  ".env",
	}
}

// LoadConfig reads the .env file, if present, and the environment. Flags
// still apply on top, so the result is not validated here.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	c := DefaultConfig()
	c.EnvFile = envFile
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Output {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	switch c.Storage {
	case factory.StorageTypeMemory, factory.StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage %q: must be memory or redis", c.Storage)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// Logger builds a text logger at the configured level
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// FactoryConfig maps CLI settings onto the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		Seed:        c.Seed,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
