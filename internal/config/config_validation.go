// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the proxy.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if p := cfg.Server.RoutePrefix; p != "" && (!strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/")) {
		return fmt.Errorf("%w: route prefix %q must start and must not end with '/'", ErrInvalidServerConfigs, p)
	}

	if strings.TrimSpace(cfg.Upstream.AuthToken) == "" {
		return ErrMissingAuthToken
	}

	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidUpstreamConfigs, cfg.Upstream.BaseURL)
	}

	if cfg.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidUpstreamConfigs)
	}

	return nil
}
