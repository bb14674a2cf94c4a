package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
	old := os.Args
	os.Args = append([]string{old[0]}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("SECRET_DIR", "")
	t.Setenv("LOCALE", "")
	t.Setenv("SESSION_COOKIE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.DatabaseDSN != "file:inventory.db" {
		t.Fatalf("DatabaseDSN default expected 'file:inventory.db', got %q", cfg.DatabaseDSN)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.Locale != "en-US" || cfg.SessionCookie != "auth_token" {
		t.Fatalf("client defaults expected en-US/auth_token, got %q/%q", cfg.Locale, cfg.SessionCookie)
	}
	if !strings.HasSuffix(cfg.SecretDir, AppName) {
		t.Fatalf("SecretDir default must end with %q, got %q", AppName, cfg.SecretDir)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("LOCALE", "de-DE")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.Locale != "de-DE" {
		t.Fatalf("Locale expected from env 'de-DE', got %q", cfg.Locale)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_FlagsWhenEnvUnset(t *testing.T) {
	for _, k := range []string{"SECRET_DIR", "DATABASE_URI", "ADMIN_USER", "BASE_URL"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	dir := filepath.Join(t.TempDir(), "secrets")

	resetFlagSet(t, "-v", "-secret-dir", dir, "-d", "postgres://u:p@db/inv", "-admin-user", "root", "status")
	cfg := NewConfig()

	if !cfg.Verbose {
		t.Fatalf("-v must enable verbose logging")
	}
	if cfg.SecretDir != dir {
		t.Fatalf("SecretDir expected %q, got %q", dir, cfg.SecretDir)
	}
	if cfg.DatabaseDSN != "postgres://u:p@db/inv" || cfg.AdminUser != "root" {
		t.Fatalf("server flags not applied: %q %q", cfg.DatabaseDSN, cfg.AdminUser)
	}
	if got := flag.Args(); len(got) != 1 || got[0] != "status" {
		t.Fatalf("remaining args expected [status], got %v", got)
	}
}
