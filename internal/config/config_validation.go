// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LetterCraft

package config

import "fmt"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Secrets and connection strings have no sensible defaults, so both must be
// supplied by the operator.
func (cfg *Config) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	return nil
}
