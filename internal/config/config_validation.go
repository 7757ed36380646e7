// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults for fields no source provided.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultTokenIssuer    = "go-auth-gate"
	DefaultTokenDuration  = 15 * time.Minute
	DefaultSuperuserEmail = "superuser@localhost"
	DefaultMaxPageSize    = 1000
	DefaultPageSize       = 20
)

// applyDefaults fills in documented default values for every optional field
// left zero after all sources have been merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}

	if cfg.Bootstrap.SuperuserEmail == "" {
		cfg.Bootstrap.SuperuserEmail = DefaultSuperuserEmail
	}

	if cfg.API.MaxPageSize == 0 {
		cfg.API.MaxPageSize = DefaultMaxPageSize
	}

	if cfg.API.DefaultPageSize == 0 {
		cfg.API.DefaultPageSize = DefaultPageSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.API.DefaultPageSize > cfg.API.MaxPageSize {
		return ErrInvalidAPIConfigs
	}

	return nil
}
