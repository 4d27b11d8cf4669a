package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hammamikhairi/cozinhamestre/internal/gpt"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DBPath != "cozinhamestre.db" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LogLevel != logger.LevelNormal || cfg.RecipeCount != 600 || cfg.RecipeSeed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LLMAPIKey != "" || cfg.LLMModel != gpt.DefaultModel || cfg.LLMEndpoint != gpt.DefaultEndpoint {
		t.Fatalf("unexpected LLM defaults %+v", cfg)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.LLMTimeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"ADDR":         "127.0.0.1:9000",
		"DB_PATH":      "",
		"LOG_LEVEL":    "verbose",
		"RECIPE_COUNT": "50",
		"RECIPE_SEED":  "7",
		"LLM_API_KEY":  "k",
		"LLM_TIMEOUT":  "5s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.DBPath != "" {
		t.Fatalf("unexpected %+v", cfg)
	}
	if cfg.LogLevel != logger.LevelVerbose || cfg.RecipeCount != 50 || cfg.RecipeSeed != 7 {
		t.Fatalf("unexpected %+v", cfg)
	}
	if cfg.LLMAPIKey != "k" || cfg.LLMTimeout != 5*time.Second {
		t.Fatalf("unexpected %+v", cfg)
	}
}

func TestFromEnvReportsEveryBadValue(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"LOG_LEVEL":    "loud",
		"RECIPE_COUNT": "-3",
		"LLM_TIMEOUT":  "soon",
	}))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, key := range []string{"LOG_LEVEL", "RECIPE_COUNT", "LLM_TIMEOUT"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error does not mention %s: %v", key, err)
		}
	}
	if cfg.RecipeCount != 600 || cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("bad values should fall back to defaults, got %+v", cfg)
	}
}

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	return path
}

func TestLoadBrokenDotEnvKeepsDefaults(t *testing.T) {
	path := writeDotEnv(t, "LLM_MODEL=\"unterminated\n")

	cfg, err := load(path, env(nil))
	if err == nil || !strings.Contains(err.Error(), "load") {
		t.Fatalf("expected a .env error, got %v", err)
	}
	if cfg.Addr != ":8080" || cfg.RecipeCount != 600 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.LLMEndpoint != gpt.DefaultEndpoint || cfg.LLMModel != gpt.DefaultModel || cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("LLM defaults lost: %+v", cfg)
	}
}

func TestLoadBrokenDotEnvStillReportsBadValues(t *testing.T) {
	path := writeDotEnv(t, "LLM_MODEL=\"unterminated\n")

	cfg, err := load(path, env(map[string]string{"RECIPE_COUNT": "many", "ADDR": ":9090"}))
	if err == nil || !strings.Contains(err.Error(), "RECIPE_COUNT") {
		t.Fatalf("expected RECIPE_COUNT in %v", err)
	}
	if cfg.Addr != ":9090" || cfg.RecipeCount != 600 {
		t.Fatalf("unexpected %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := writeDotEnv(t, "RECIPE_COUNT=40\nLLM_MODEL=gemini-2.0-flash\n")

	cfg, err := load(path, env(map[string]string{"LLM_MODEL": "local"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RecipeCount != 40 {
		t.Fatalf("file value ignored: %+v", cfg)
	}
	if cfg.LLMModel != "local" {
		t.Fatalf("environment should win over .env, got %q", cfg.LLMModel)
	}
}

func TestLoadMissingDotEnv(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), ".env"), env(nil))
	if err != nil {
		t.Fatalf("missing .env should be fine: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected %+v", cfg)
	}
}
