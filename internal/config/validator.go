package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate returns an error listing every invalid setting.
func (s Settings) Validate() error {
	var errors []string

	if s.Scale < 1 {
		errors = append(errors, fmt.Sprintf("scale must be at least 1, got: %d", s.Scale))
	}

	if s.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(s.MetricsAddr); err != nil {
			errors = append(errors, fmt.Sprintf("metrics_addr must be host:port, got: %q", s.MetricsAddr))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}
