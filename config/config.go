package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	App AppConfig
	DB  DBConfig
	JWT JWTConfig
	Log LogConfig
}

type AppConfig struct {
	Host         string
	Port         string
	Env          string
	StaticDir    string
	DevServerURL string
}

// IsProduction reports whether the SPA should be served from the built assets.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	LogLevel string
}

type JWTConfig struct {
	Secret string
	// Expiry of issued tokens. Zero issues tokens without an exp claim.
	Expiry time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig reads configuration from an optional .env file in the working
// directory and from the process environment, which takes precedence.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STATIC_DIR", "dist")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "healthcare.db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	var expiry time.Duration
	if raw := v.GetString("JWT_EXPIRY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRY %q: %w", raw, err)
		}
		expiry = d
	}

	config := &Config{
		App: AppConfig{
			Host:         v.GetString("APP_HOST"),
			Port:         v.GetString("APP_PORT"),
			Env:          v.GetString("APP_ENV"),
			StaticDir:    v.GetString("STATIC_DIR"),
			DevServerURL: v.GetString("DEV_SERVER_URL"),
		},
		DB: DBConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return config, nil
}
