// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// normalize lower-cases enumerated values and admin emails so that every
// source may spell them freely.
func normalize(cfg *StructuredConfig) {
	cfg.Storage.Diary.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Diary.Backend))
	cfg.App.PasswordHashing = strings.ToLower(strings.TrimSpace(cfg.App.PasswordHashing))

	for i, email := range cfg.App.AdminEmails {
		cfg.App.AdminEmails[i] = strings.ToLower(strings.TrimSpace(email))
	}
}
