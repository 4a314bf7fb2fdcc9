package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
	DSN  string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Admin struct {
	Username string
	Email    string
	Password string
}

// Config is built once at startup and passed explicitly to the components
// that need it.
type Config struct {
	HTTP  HTTP
	DB    DB
	JWT   JWT
	Admin Admin
}

// Load reads configuration from the process environment (EBOOK_ prefix).
// An optional YAML file path can supply development overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EBOOK")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 3000)
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "ebook_share")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "ebook-share")
	v.SetDefault("JWT_EXP_MIN", 60)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_EMAIL", "admin@localhost")
	v.SetDefault("ADMIN_PASSWORD", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("HTTP_HOST"), Port: v.GetInt("HTTP_PORT")},
		DB: DB{
			Host: v.GetString("DB_HOST"),
			Port: v.GetInt("DB_PORT"),
			User: v.GetString("DB_USER"),
			Pass: v.GetString("DB_PASS"),
			Name: v.GetString("DB_NAME"),
			DSN:  v.GetString("DB_DSN"),
		},
		JWT: JWT{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
			ExpMin: v.GetInt("JWT_EXP_MIN"),
		},
		Admin: Admin{
			Username: v.GetString("ADMIN_USERNAME"),
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("EBOOK_JWT_SECRET is required")
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
