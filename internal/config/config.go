// Package config reads the process configuration from the environment,
// after loading a .env file if one is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/cozinhamestre/internal/gpt"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
	"github.com/hammamikhairi/cozinhamestre/internal/recipe"
)

// Config is everything the binary needs to wire itself.
type Config struct {
	Addr     string
	DBPath   string // empty keeps state in memory
	LogLevel logger.Level

	RecipeCount int
	RecipeSeed  uint64 // 0 seeds from the clock

	LLMAPIKey   string // empty leaves the chef offline
	LLMEndpoint string
	LLMModel    string
	LLMTimeout  time.Duration
}

// Load reads the environment, falling back to .env (missing is fine) for
// keys the environment does not set.
func Load() (Config, error) {
	return load(".env", os.LookupEnv)
}

// load never gives up on a broken file: its keys are skipped, the rest of
// the configuration still gets its defaults and both errors are returned.
func load(path string, lookup func(string) (string, bool)) (Config, error) {
	file, fileErr := godotenv.Read(path)
	switch {
	case fileErr == nil:
	case errors.Is(fileErr, os.ErrNotExist):
		fileErr = nil
	default:
		file = nil
		fileErr = fmt.Errorf("config: load %s: %w", path, fileErr)
	}

	cfg, err := FromEnv(func(k string) (string, bool) {
		if v, ok := lookup(k); ok {
			return v, true
		}
		v, ok := file[k]
		return v, ok
	})
	return cfg, errors.Join(fileErr, err)
}

// FromEnv builds a Config from lookup, applying defaults for unset keys.
// Every malformed value is reported, not just the first.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok {
			return v
		}
		return def
	}

	var errs []error
	cfg := Config{
		Addr:        get("ADDR", ":8080"),
		DBPath:      get("DB_PATH", "cozinhamestre.db"),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMEndpoint: get("LLM_ENDPOINT", gpt.DefaultEndpoint),
		LLMModel:    get("LLM_MODEL", gpt.DefaultModel),
	}

	level, ok := logger.ParseLevel(get("LOG_LEVEL", "normal"))
	if !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: unknown level %q", get("LOG_LEVEL", "")))
	}
	cfg.LogLevel = level

	count, err := strconv.Atoi(get("RECIPE_COUNT", strconv.Itoa(recipe.DefaultCount)))
	if err != nil || count < 0 {
		errs = append(errs, fmt.Errorf("RECIPE_COUNT: want a non-negative integer, got %q", get("RECIPE_COUNT", "")))
		count = recipe.DefaultCount
	}
	cfg.RecipeCount = count

	seed, err := strconv.ParseUint(get("RECIPE_SEED", "0"), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("RECIPE_SEED: %w", err))
	}
	cfg.RecipeSeed = seed

	timeout, err := time.ParseDuration(get("LLM_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		errs = append(errs, fmt.Errorf("LLM_TIMEOUT: want a positive duration, got %q", get("LLM_TIMEOUT", "")))
		timeout = 30 * time.Second
	}
	cfg.LLMTimeout = timeout

	if len(errs) > 0 {
		return cfg, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}
