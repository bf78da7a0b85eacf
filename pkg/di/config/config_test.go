package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.GridCellSize)
	assert.Equal(t, -15.8402, cfg.MapCenterLat)
	assert.Equal(t, -70.0219, cfg.MapCenterLng)
	assert.Equal(t, 13, cfg.MapZoom)
	assert.Equal(t, "#ff7800", cfg.GridCellColor)
	assert.Equal(t, 2500, cfg.GridMaxOverlayCells)
	assert.Equal(t, 0, cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogTimeFormat)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("GRID_CELL_SIZE", "0.05")
	t.Setenv("MAP_ZOOM", "15")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.GridCellSize)
	assert.Equal(t, 15, cfg.MapZoom)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{MapCenterLat: -15.84, MapCenterLng: -70.02, MapZoom: 13}},
		{name: "bad latitude", cfg: Config{MapCenterLat: 91, MapZoom: 13}, wantErr: ErrInvalidCenter},
		{name: "bad longitude", cfg: Config{MapCenterLng: -181, MapZoom: 13}, wantErr: ErrInvalidCenter},
		{name: "bad zoom", cfg: Config{MapZoom: 25}, wantErr: ErrInvalidZoom},
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
