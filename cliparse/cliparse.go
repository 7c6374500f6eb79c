// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by ParseFlags
const EnvPrefix = "OLYMPICS_"

type Config struct {
	Port         int    `koanf:"port"`
	DatabaseURL  string `koanf:"database_url"`
	DatabaseType string `koanf:"database_type"`

	// Authentication
	UsersFile     string        `koanf:"users_file"`
	SessionSecret string        `koanf:"session_secret"`
	SessionTTL    time.Duration `koanf:"session_ttl"`
	SecureCookies bool          `koanf:"secure_cookies"`

	// Listing
	PageSize    int `koanf:"page_size"`
	MaxPageSize int `koanf:"max_page_size"`

	// Logging
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Port:         8080,
		DatabaseURL:  "olympics.db",
		DatabaseType: "sqlite",
		UsersFile:    "users.json",
		SessionTTL:   30 * time.Minute,
		PageSize:     30,
		MaxPageSize:  200,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// ParseFlags builds the configuration. Order of precedence (low -> high):
//  1. defaults
//  2. YAML file (-c or OLYMPICS_CONFIG)
//  3. OLYMPICS_* environment, including values from the dotenv file
//  4. flags set on the command line
func ParseFlags(args []string) (Config, error) {
	var (
		port       int
		dbURL      string
		dbType     string
		usersFile  string
		secret     string
		configFile string
		envFile    string
	)

	fs := flag.NewFlagSet("olympics", flag.ContinueOnError)

	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&dbURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&usersFile, "u", "", "Users file")
	fs.StringVar(&configFile, "c", "", "YAML config file")
	fs.StringVar(&envFile, "env-file", ".env", "Dotenv file, loaded when present")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&secret, "session-secret", "", "Session signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment wins over the dotenv file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	k := koanf.New(".")

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "CONFIG")
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	}

	// OLYMPICS_DATABASE_URL -> database_url
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "d":
			cfg.DatabaseURL = dbURL
		case "t":
			cfg.DatabaseType = dbType
		case "u":
			cfg.UsersFile = usersFile
		case "session-secret":
			cfg.SessionSecret = secret
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks required settings and ranges
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or OLYMPICS_DATABASE_URL env)")
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return fmt.Errorf("database type must be sqlite or postgres, got %q", c.DatabaseType)
	}
	if c.UsersFile == "" {
		return errors.New("users file required")
	}

	// Secrets - MUST be provided
	if c.SessionSecret == "" {
		return errors.New("OLYMPICS_SESSION_SECRET required")
	}

	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if c.PageSize <= 0 {
		return errors.New("page size must be positive")
	}
	if c.MaxPageSize < c.PageSize {
		return errors.New("max page size must not be below page size")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
