// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from the default `.env` file in the current working
//     directory, once per process.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the application cannot start without.
//
// Configuration is resolved at startup and passed explicitly into the
// components that need it; nothing in this module reads the environment
// ambiently at runtime.
package config
