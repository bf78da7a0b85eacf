package logger_di

import (
	"testing"
	"time"

	di_config "github.com/lintang-b-s/nearby-grid/pkg/di/config"
	"github.com/lintang-b-s/nearby-grid/pkg/logger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		format  string
		wantErr error
	}{
		{name: "info", level: config.INFO_LEVEL, format: time.RFC3339Nano},
		{name: "debug", level: config.DEBUG_LEVEL, format: time.RFC3339},
		{name: "level too high", level: 42, format: time.RFC3339, wantErr: config.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, cleanup, err := New(&di_config.Config{LogLevel: tt.level, LogTimeFormat: tt.format})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
			cleanup()
		})
	}
}
