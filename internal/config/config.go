package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is loaded once at startup and passed explicitly into every
// constructor that needs it. Nothing in the codebase reads configuration
// through package-level state.
type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	PageSettings   PageSettings
	Authentication Authentication
}

type ServerConfig struct {
	Addr    string
	GinMode string
}

type DatabaseConfig struct {
	DSN string
}

// PageSettings bounds paginated listing endpoints.
type PageSettings struct {
	MaxPageSize int
}

// Authentication holds the token signing material and the issuer/audience
// values embedded into (and checked on) every token.
type Authentication struct {
	SecretForKey string
	Issuer       string
	Audience     string
}

// Load reads config.yaml from configPath and applies environment overrides
// (APP_SERVER_ADDR, APP_AUTHENTICATION_SECRETFORKEY, ...).
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.ginMode", "")
	v.SetDefault("database.dsn", "root:@tcp(127.0.0.1:3306)/airport_ops?parseTime=true&loc=Local&charset=utf8mb4")
	v.SetDefault("pageSettings.maxPageSize", 50)

	v.BindEnv("server.addr")
	v.BindEnv("database.dsn")
	v.BindEnv("pageSettings.maxPageSize")
	v.BindEnv("authentication.secretForKey")
	v.BindEnv("authentication.issuer")
	v.BindEnv("authentication.audience")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		// no config.yaml: defaults + env vars
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:    v.GetString("server.addr"),
			GinMode: v.GetString("server.ginMode"),
		},
		Database: DatabaseConfig{
			DSN: v.GetString("database.dsn"),
		},
		PageSettings: PageSettings{
			MaxPageSize: v.GetInt("pageSettings.maxPageSize"),
		},
		Authentication: Authentication{
			SecretForKey: v.GetString("authentication.secretForKey"),
			Issuer:       v.GetString("authentication.issuer"),
			Audience:     v.GetString("authentication.audience"),
		},
	}

	if cfg.Authentication.SecretForKey == "" {
		return Config{}, fmt.Errorf("authentication.secretForKey is required")
	}
	if cfg.PageSettings.MaxPageSize < 1 {
		return Config{}, fmt.Errorf("pageSettings.maxPageSize must be at least 1")
	}

	return cfg, nil
}
