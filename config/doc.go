// Package config loads runtime settings from the environment.
//
// Precedence: a .env file in the working directory seeds the process
// environment (a missing file is not an error; already-set variables win),
// then each LEXOPT_* variable is parsed with a typed default. A variable
// that is set but unparsable is an error, never a silent fallback.
//
// Essence:
//   - Load() → *Config with window geometry, solver limits, seed, workers.
package config
