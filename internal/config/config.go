package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// AppName используется для каталога настроек клиента.
const AppName = "InventoryManagement"

type Config struct {
	// Server-side settings
	DatabaseDSN   string `env:"DATABASE_URI"`
	AuthSecret    string `env:"AUTH_SECRET"`
	AdminUser     string `env:"ADMIN_USER"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL     string `env:"-"`
	SecretDir     string `env:"SECRET_DIR"`
	Locale        string `env:"LOCALE"`
	SessionCookie string `env:"SESSION_COOKIE"`
	Verbose       bool   `env:"-"` // подробный лог клиента (flag only)
	Version       bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (sqlite DSN или postgres://)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.AdminUser, "admin-user", cfg.AdminUser, "логин учётной записи, создаваемой при старте сервера")
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "пароль учётной записи, создаваемой при старте сервера")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the inventory server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.SecretDir, "secret-dir", cfg.SecretDir, "directory for stored credentials and session (client)")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for money formatting, e.g. en-US or de-DE (client)")
	flag.StringVar(&cfg.SessionCookie, "session-cookie", cfg.SessionCookie, "name of the session cookie (client)")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose client logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "file:inventory.db"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.SecretDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.SecretDir = filepath.Join(dir, AppName)
		} else {
			home, _ := os.UserHomeDir()
			cfg.SecretDir = filepath.Join(home, "."+AppName)
		}
	}
	if cfg.Locale == "" {
		cfg.Locale = "en-US"
	}
	if cfg.SessionCookie == "" {
		cfg.SessionCookie = "auth_token"
	}

	return cfg
}
