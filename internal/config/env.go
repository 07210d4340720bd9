package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment according to the env and
// envPrefix tags, e.g. STORAGE_DB_DATABASE_URI for cfg.Storage.DB.DSN.
// Unset variables leave fields at their zero value so that the builder can
// merge the result over defaults.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading env configuration: %w", err)
	}
	return nil
}
