package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("jwt secret is not configured")

type Config struct {
	App    AppConfig    `toml:"app"`
	Auth   AuthConfig   `toml:"auth"`
	SQLite SQLiteConfig `toml:"sqlite"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	JWTSecret       string  `toml:"jwt_secret"`
	JWTExpireMinute int     `toml:"jwt_expire_minute"`
	LoginRPS        float64 `toml:"login_rps"`
	LoginBurst      int     `toml:"login_burst"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	// No fallback secret: a process that cannot sign tokens must not start.
	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "eventbook",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			JWTExpireMinute: 24 * 60,
			LoginRPS:        5,
			LoginBurst:      10,
		},
		SQLite: SQLiteConfig{
			Path: "eventbook.db",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.JWTExpireMinute = getEnvAsInt("JWT_EXPIRE_MINUTE", cfg.Auth.JWTExpireMinute)
	cfg.Auth.LoginBurst = getEnvAsInt("LOGIN_BURST", cfg.Auth.LoginBurst)

	cfg.SQLite.Path = getEnv("SQLITE_PATH", cfg.SQLite.Path)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
