package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr error
	}{
		{name: "info rfc3339", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}},
		{name: "debug kitchen", cfg: Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}},
		{name: "level too low", cfg: Configuration{Level: -2, TimeFormat: time.RFC3339}, wantErr: ErrInvalidLevel},
		{name: "level too high", cfg: Configuration{Level: 6, TimeFormat: time.RFC3339}, wantErr: ErrInvalidLevel},
		{name: "empty time format", cfg: Configuration{Level: INFO_LEVEL}, wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
