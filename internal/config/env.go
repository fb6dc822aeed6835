// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped via their `env`, `envPrefix` and `envDefault`
// tags, so unset variables fall back to their documented defaults.
func parseEnv(cfg *StructuredConfig) error {
	parsed, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	*cfg = parsed
	return nil
}
