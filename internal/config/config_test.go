package config

import (
	"testing"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/platform/logging"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "APP_SERVICE_NAME", "APP_SERVICE_VERSION", "APP_HTTP_ADDR",
		"DB_URL", "CACHE_ENABLED", "CACHE_TTL", "CORS_ALLOWED_ORIGINS",
		"APP_READ_TIMEOUT", "APP_WRITE_TIMEOUT",
		"PPROF_ENABLED", "PPROF_ADDR",
		"UPTRACE_ENABLED", "UPTRACE_DSN",
		"PYROSCOPE_ENABLED", "PYROSCOPE_SERVER_ADDRESS", "PYROSCOPE_APP_NAME",
		"PYROSCOPE_AUTH_TOKEN", "PYROSCOPE_UPLOAD_RATE",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "futclebs-api" || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBURL != "" {
		t.Fatalf("DB_URL must default empty, got %q", cfg.DBURL)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS default: %+v", cfg.CORSAllowedOrigins)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: %+v", cfg)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled || cfg.PprofEnabled {
		t.Fatalf("observability must default off: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_ENV", "Prod")
	t.Setenv("APP_SERVICE_NAME", "futclebs-staging")
	t.Setenv("DB_URL", "postgres://app@db:5432/futclebs")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("APP_ENV must normalize case, got %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "futclebs-staging" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache ttl: %v", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("CSV parsing failed: %+v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Failures(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad app env", "APP_ENV", "production"},
		{"bad bool", "CACHE_ENABLED", "yes please"},
		{"bad duration", "CACHE_TTL", "soon"},
		{"zero ttl", "CACHE_TTL", "0s"},
		{"uptrace without dsn", "UPTRACE_ENABLED", "true"},
		{"pyroscope without address", "PYROSCOPE_ENABLED", "true"},
		{"zero upload rate", "PYROSCOPE_UPLOAD_RATE", "0s"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected load failure for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_PyroscopeAppNameFallsBackToService(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("APP_SERVICE_NAME", "futclebs-api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PyroscopeAppName != "futclebs-api" {
		t.Fatalf("expected app name fallback, got %q", cfg.PyroscopeAppName)
	}
}
