package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnvMap(t *testing.T) {
	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(map[string]string{
			"SEO_SERVER_PORT":         "9090",
			"SEO_SERVER_READ_TIMEOUT": "5s",
			"SEO_SITE_BASE_URL":       "https://uslugi-market.ru/",
			"SEO_SITE_NAME":           "Услуги Маркет",
			"SEO_SITE_CURRENCY":       "rub",
		}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected read timeout %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != defaultWriteTimeout {
		t.Fatalf("unexpected write timeout %v", cfg.Server.WriteTimeout)
	}
	if cfg.Site.BaseURL != "https://uslugi-market.ru" {
		t.Fatalf("base url should lose its trailing slash, got %q", cfg.Site.BaseURL)
	}
	if cfg.Site.Language != defaultSiteLanguage {
		t.Fatalf("unexpected language %q", cfg.Site.Language)
	}
	if cfg.Site.Currency != "RUB" {
		t.Fatalf("currency should be upper-cased, got %q", cfg.Site.Currency)
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatalf("expected a validation error")
	}

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	fields := validation.Fields()
	want := map[string]bool{"Site.BaseURL": false, "Site.Name": false}
	for _, field := range fields {
		if _, ok := want[field]; ok {
			want[field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Fatalf("expected %s among missing fields %v", field, fields)
		}
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# local overrides
export SEO_SITE_BASE_URL="https://uslugi-market.ru"
SEO_SITE_NAME='Услуги Маркет'
SEO_SERVER_IDLE_TIMEOUT=90s

malformed line without equals
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Site.BaseURL != "https://uslugi-market.ru" {
		t.Fatalf("unexpected base url %q", cfg.Site.BaseURL)
	}
	if cfg.Site.Name != "Услуги Маркет" {
		t.Fatalf("quotes should be stripped, got %q", cfg.Site.Name)
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Fatalf("unexpected idle timeout %v", cfg.Server.IdleTimeout)
	}
}

func TestEnvMapWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SEO_SERVER_PORT=7070\nSEO_SITE_BASE_URL=https://file.example\nSEO_SITE_NAME=File\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(path),
		WithEnvMap(map[string]string{"SEO_SERVER_PORT": "6060"}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "6060" {
		t.Fatalf("env map should win over the env file, got %q", cfg.Server.Port)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(map[string]string{
			"SEO_SERVER_READ_TIMEOUT": "not-a-duration",
			"SEO_SITE_BASE_URL":       "https://uslugi-market.ru",
			"SEO_SITE_NAME":           "Услуги Маркет",
		}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Fatalf("invalid duration should fall back to the default, got %v", cfg.Server.ReadTimeout)
	}
}

func TestMissingEnvFileIgnored(t *testing.T) {
	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(filepath.Join(t.TempDir(), "no-such.env")),
		WithEnvMap(map[string]string{
			"SEO_SITE_BASE_URL": "https://uslugi-market.ru",
			"SEO_SITE_NAME":     "Услуги Маркет",
		}),
	)
	if err != nil {
		t.Fatalf("a missing env file must not fail the load: %v", err)
	}
	if cfg.Server.Port != defaultPort {
		t.Fatalf("unexpected default port %q", cfg.Server.Port)
	}
}
