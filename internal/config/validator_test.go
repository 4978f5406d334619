package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{name: "defaults", settings: Settings{Scale: 1}},
		{name: "with metrics addr", settings: Settings{Scale: 2, MetricsAddr: ":2112"}},
		{name: "zero scale", settings: Settings{Scale: 0}, wantErr: "scale must be at least 1"},
		{name: "bad addr", settings: Settings{Scale: 1, MetricsAddr: "2112"}, wantErr: "metrics_addr must be host:port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
