package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by gmscreen binaries.
const EnvPrefix = "GMSCREEN_"

// ParseEnv loads configuration from environment variables.
//
// Field tags are written without the shared prefix; ParseEnv applies
// EnvPrefix so `env:"WEB_HTTP_ADDR"` reads GMSCREEN_WEB_HTTP_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
