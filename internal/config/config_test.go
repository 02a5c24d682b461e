package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// clearStrideEnv blanks every override so tests see only what they set.
func clearStrideEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STRIDE_PORT", "STRIDE_READ_TIMEOUT", "STRIDE_WRITE_TIMEOUT",
		"STRIDE_SHUTDOWN_TIMEOUT", "STRIDE_DB_PATH", "OPENROUTER_API_KEY",
		"STRIDE_AI_BASE_URL", "STRIDE_AI_MODEL", "STRIDE_AI_REQUEST_TIMEOUT",
		"STRIDE_JWT_SECRET", "STRIDE_TOKEN_TTL", "STRIDE_LOG_LEVEL",
		"STRIDE_LOG_FORMAT", "STRIDE_DEV_MODE", "STRIDE_CONFIG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stride.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearStrideEnv(t)
	t.Setenv("STRIDE_JWT_SECRET", testSecret)
	t.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/stride.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.AI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("AI.BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Model != "gryphe/mythomist-7b:free" {
		t.Errorf("AI.Model = %q", cfg.AI.Model)
	}
	if time.Duration(cfg.AI.RequestTimeout) != 30*time.Second {
		t.Errorf("AI.RequestTimeout = %v, want 30s", time.Duration(cfg.AI.RequestTimeout))
	}
	if time.Duration(cfg.Auth.TokenTTL) != 720*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 720h", time.Duration(cfg.Auth.TokenTTL))
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if cfg.AI.APIKey != "" {
		t.Error("APIKey must default to empty, generation degrades without it")
	}
}

func TestLoadFromFile_YAMLOverrides(t *testing.T) {
	clearStrideEnv(t)
	t.Setenv("STRIDE_JWT_SECRET", testSecret)

	path := writeConfigFile(t, `
server:
  port: 9090
  read_timeout: 45s
ai:
  model: another/model
log:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090 from file", cfg.Server.Port)
	}
	if time.Duration(cfg.Server.ReadTimeout) != 45*time.Second {
		t.Errorf("ReadTimeout = %v, want 45s", time.Duration(cfg.Server.ReadTimeout))
	}
	if cfg.AI.Model != "another/model" {
		t.Errorf("AI.Model = %q", cfg.AI.Model)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	// Untouched keys keep defaults.
	if cfg.Server.Port == 9090 && cfg.Database.Path != "data/stride.db" {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
}

func TestLoadFromFile_EnvBeatsYAML(t *testing.T) {
	clearStrideEnv(t)
	t.Setenv("STRIDE_JWT_SECRET", testSecret)
	t.Setenv("STRIDE_PORT", "7070")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")

	path := writeConfigFile(t, "server:\n  port: 9090\n")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, env override must win over file", cfg.Server.Port)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want env value", cfg.AI.APIKey)
	}
}

func TestLoad_SecretValidation(t *testing.T) {
	t.Run("missing secret fails", func(t *testing.T) {
		clearStrideEnv(t)
		t.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

		if _, err := Load(); err == nil {
			t.Fatal("Load() succeeded without STRIDE_JWT_SECRET")
		}
	})

	t.Run("short secret fails", func(t *testing.T) {
		clearStrideEnv(t)
		t.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("STRIDE_JWT_SECRET", "too-short")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "32") {
			t.Fatalf("Load() error = %v, want length complaint", err)
		}
	})

	t.Run("dev mode skips secret validation", func(t *testing.T) {
		clearStrideEnv(t)
		t.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("STRIDE_DEV_MODE", "true")

		if _, err := Load(); err != nil {
			t.Fatalf("Load() error = %v, want success in dev mode", err)
		}
	})
}

func TestLoadFromFile_Errors(t *testing.T) {
	clearStrideEnv(t)
	t.Setenv("STRIDE_JWT_SECRET", testSecret)

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit file must fail")
	}

	bad := writeConfigFile(t, "server:\n  read_timeout: banana\n")
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("unparseable duration must fail")
	}
}
