// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the process environment into a fresh StructuredConfig.
// Unset variables leave zero values so the builder's merge keeps lower
// layers (defaults) for them.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
