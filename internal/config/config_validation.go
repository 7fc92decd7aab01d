// SPDX-License-Identifier: Apache-2.0

package config

// defaults applied after merging all configuration sources.
const (
	defaultAPIVersion  = "1.0"
	defaultHTTPAddress = "localhost:8080"
	defaultBaseURL     = "http://localhost:8080"
	defaultSessionDB   = "session.db"
)

// applyDefaults fills zero-valued fields that have a sensible default, so the
// application can start with no configuration at all during local development.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.APIVersion == "" {
		cfg.App.APIVersion = defaultAPIVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = defaultBaseURL
	}
	if cfg.Client.SessionDBPath == "" {
		cfg.Client.SessionDBPath = defaultSessionDB
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenTTL < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.BcryptCost < 0 || cfg.App.BcryptCost > 31 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
