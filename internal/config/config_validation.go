// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// applyDefaults fills in defaults for settings the operator left unset.
// It runs after all sources are merged, so explicit values always win.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The node API URL is the single required setting: it must be present and
// parse as an http or https URL with a host. A violation here is the only
// process-fatal failure in the gateway.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.NodeAPIURL == "" {
		return fmt.Errorf("%w: node API URL is not set", ErrInvalidAdapterConfigs)
	}

	parsed, err := url.Parse(cfg.Adapter.NodeAPIURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: node API URL must be an http(s) URL with a host, got %q",
			ErrInvalidAdapterConfigs, cfg.Adapter.NodeAPIURL)
	}

	return nil
}
