package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "DB_DRIVER", "TOKEN_SECRET", "TOKEN_TTL", "ADMIN_API_KEY", "AMQP_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected default driver postgres, got %q", cfg.DBDriver)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected default token ttl 1h, got %v", cfg.TokenTTL)
	}
	if cfg.TokenSecret != DevTokenSecret {
		t.Errorf("expected dev secret fallback, got %q", cfg.TokenSecret)
	}
	if cfg.AMQPURL != "" {
		t.Errorf("expected AMQP disabled by default, got %q", cfg.AMQPURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/ft.db")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("ADMIN_API_KEY", "ops-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath != "/tmp/ft.db" {
		t.Errorf("unexpected sqlite settings: %q %q", cfg.DBDriver, cfg.SQLitePath)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("expected 15m, got %v", cfg.TokenTTL)
	}
	if cfg.AdminAPIKey != "ops-key" {
		t.Errorf("expected admin key, got %q", cfg.AdminAPIKey)
	}
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TOKEN_TTL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected fallback 1h, got %v", cfg.TokenTTL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "dev_with_fallback_secret", cfg: Config{Env: "development", DBDriver: "postgres", TokenSecret: DevTokenSecret}},
		{name: "production_with_fallback_secret", cfg: Config{Env: "production", DBDriver: "postgres", TokenSecret: DevTokenSecret}, wantErr: true},
		{name: "production_with_real_secret", cfg: Config{Env: "production", DBDriver: "postgres", TokenSecret: "x9"}},
		{name: "empty_secret", cfg: Config{Env: "development", DBDriver: "sqlite"}, wantErr: true},
		{name: "unknown_driver", cfg: Config{Env: "development", DBDriver: "mysql", TokenSecret: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
