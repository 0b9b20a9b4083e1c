// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Password hashing modes.
const (
	PasswordHashingBcrypt = "bcrypt"
	PasswordHashingPlain  = "plain"
)

// validate checks that the final merged [StructuredConfig] is usable by the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	switch cfg.App.PasswordHashing {
	case PasswordHashingBcrypt, PasswordHashingPlain:
	default:
		return fmt.Errorf("%w: unknown password hashing mode %q", ErrInvalidAppConfigs, cfg.App.PasswordHashing)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty document store DSN", ErrInvalidStorageConfigs)
	}

	if err := cfg.Storage.Diary.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.CheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (d Diary) validate() error {
	switch d.Backend {
	case DiaryBackendSQLite:
		if d.DSN == "" {
			return fmt.Errorf("%w: empty diary DSN", ErrInvalidStorageConfigs)
		}
	case DiaryBackendRedis:
		if d.RedisAddress == "" {
			return fmt.Errorf("%w: empty diary redis address", ErrInvalidStorageConfigs)
		}
	case DiaryBackendMemory:
	default:
		return fmt.Errorf("%w: unknown diary backend %q", ErrInvalidStorageConfigs, d.Backend)
	}

	if d.Namespace == "" {
		return fmt.Errorf("%w: empty diary namespace", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.MarkerPath == "" {
		return fmt.Errorf("%w: empty session marker path", ErrInvalidStorageConfigs)
	}

	return nil
}
