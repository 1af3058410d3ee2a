package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNotStructPointer indicates Load was given something other than a
// non-nil pointer to a struct.
var ErrNotStructPointer = errors.New("config target must be a non-nil struct pointer")

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// .env loading happens once per process, before the first parse.
	dotenvOnce sync.Once
)

// Load parses environment variables into the env-tagged struct pointed to by
// cfg. A .env file, when present, is loaded into the process environment
// before the first parse. Each concrete struct type is parsed once per
// process; later loads of the same type receive the cached value, so
// configuration stays consistent across call sites.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env files are expected outside development.
		_ = godotenv.Load()
	})

	t := v.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	cache[t] = v.Elem().Interface()
	return nil
}

// MustLoad is Load that panics on failure, useful during startup wiring.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
