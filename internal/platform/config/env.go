// Package config loads command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by ParseEnv.
const EnvPrefix = "GUESS_"

// ParseEnv loads configuration from GUESS_-prefixed environment variables
// into target, which must be a pointer to a struct with env tags.
func ParseEnv(target any) error {
	return parseEnvWithPrefix(target, EnvPrefix)
}

func parseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
