package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = map[reflect.Type]any{}
)

// Load populates cfg (a pointer to struct with `env` tags) from environment
// variables. A .env file, when present, is loaded once per process before the
// first parse. Each configuration type is parsed only once; later calls for
// the same type receive the cached value, so every part of the application
// sees identical configuration.
func Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: target must be a non-nil pointer to struct, got %T", cfg)
	}

	dotenvOnce.Do(func() {
		// Missing .env files are the normal production case.
		_ = godotenv.Load()
	})

	t := rv.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		rv.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", t, err)
	}

	cache[t] = rv.Elem().Interface()
	return nil
}

// MustLoad is Load panicking on failure, for use during startup where a
// missing required variable should stop the process.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
