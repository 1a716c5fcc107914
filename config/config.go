// Package config - environment loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrBadValue indicates an environment variable that is set but does not
// parse as its expected type.
var ErrBadValue = errors.New("config: unparsable value")

// Environment variable names.
const (
	envWindowWidth = "LEXOPT_WINDOW_WIDTH"
	envWindowStep  = "LEXOPT_WINDOW_STEP"
	envEpsilon     = "LEXOPT_EPSILON"
	envTimeLimit   = "LEXOPT_TIME_LIMIT"
	envGap         = "LEXOPT_GAP"
	envSeed        = "LEXOPT_SEED"
	envWorkers     = "LEXOPT_WORKERS"
)

// Config carries every runtime knob of the demo binary and the drivers.
type Config struct {
	// WindowWidth and WindowStep are the rolling-horizon geometry, in days.
	WindowWidth int
	WindowStep  int

	// Epsilon is the floor tolerance applied to every tier.
	Epsilon float64

	// TimeLimit bounds one tier solve; Gap is the relative optimality gap
	// at which a time-limited incumbent still locks its floor.
	TimeLimit time.Duration
	Gap       float64

	// Seed drives scenario generation; 0 selects the fixed default stream.
	Seed int64

	// Workers bounds concurrent property solves.
	Workers int
}

// Load reads .env (if present) and the LEXOPT_* variables.
//
// Defaults: width 14, step 7, epsilon 1e-6, time limit 30s, gap 0, seed 0,
// workers runtime.NumCPU.
func Load() (*Config, error) {
	// Missing .env means "env vars only"; any other read error is real.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		WindowWidth: 14,
		WindowStep:  7,
		Epsilon:     1e-6,
		TimeLimit:   30 * time.Second,
		Gap:         0,
		Seed:        0,
		Workers:     runtime.NumCPU(),
	}

	var err error
	if cfg.WindowWidth, err = intVar(envWindowWidth, cfg.WindowWidth); err != nil {
		return nil, err
	}
	if cfg.WindowStep, err = intVar(envWindowStep, cfg.WindowStep); err != nil {
		return nil, err
	}
	if cfg.Epsilon, err = floatVar(envEpsilon, cfg.Epsilon); err != nil {
		return nil, err
	}
	if cfg.TimeLimit, err = durationVar(envTimeLimit, cfg.TimeLimit); err != nil {
		return nil, err
	}
	if cfg.Gap, err = floatVar(envGap, cfg.Gap); err != nil {
		return nil, err
	}
	if cfg.Seed, err = int64Var(envSeed, cfg.Seed); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intVar(envWorkers, cfg.Workers); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intVar(name string, def int) (int, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, ErrBadValue)
	}

	return v, nil
}

func int64Var(name string, def int64) (int64, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, ErrBadValue)
	}

	return v, nil
}

func floatVar(name string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, ErrBadValue)
	}

	return v, nil
}

func durationVar(name string, def time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, ErrBadValue)
	}

	return v, nil
}
