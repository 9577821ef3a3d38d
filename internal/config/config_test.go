package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		shouldErr bool
	}{
		{"info", "info", false},
		{"debug", "debug", false},
		{"warn", "warn", false},
		{"error", "error", false},
		{"garbage", "loud", true},
		{"empty is info", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Logging: LoggingConfig{Level: tc.level}}
			err := cfg.Validate()
			if tc.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildLogger(t *testing.T) {
	logger, err := LoggingConfig{Level: "debug", Development: true}.BuildLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = LoggingConfig{Level: "info"}.BuildLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = LoggingConfig{Level: "loud"}.BuildLogger()
	assert.Error(t, err)
}
