// Package config loads typed configuration structs from environment
// variables, optionally seeded from a .env file.
//
// Configuration is declared with `env` struct tags and parsed with
// github.com/caarlos0/env. The .env file is read at most once per process,
// so repeated Load calls across packages stay cheap and deterministic.
//
// Usage:
//
//	type EmailConfig struct {
//		PublicKey string `env:"PUBLIC_EMAILJS_PUBLIC_KEY,required"`
//	}
//
//	var cfg EmailConfig
//	config.MustLoad(&cfg)
package config
