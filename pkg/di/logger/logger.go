package logger_di

import (
	di_config "github.com/lintang-b-s/nearby-grid/pkg/di/config"
	"github.com/lintang-b-s/nearby-grid/pkg/logger/config"
	myZap "github.com/lintang-b-s/nearby-grid/pkg/logger/zap"

	"go.uber.org/zap"
)

func New(appConfig *di_config.Config) (*zap.Logger, func(), error) {
	cfg := config.Configuration{
		Level:      appConfig.LogLevel,
		TimeFormat: appConfig.LogTimeFormat,
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := myZap.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	log.Info("config loaded",
		zap.Float64("grid_cell_size", appConfig.GridCellSize),
		zap.Float64("map_center_lat", appConfig.MapCenterLat),
		zap.Float64("map_center_lng", appConfig.MapCenterLng),
		zap.Int("map_zoom", appConfig.MapZoom),
		zap.Int("grid_max_overlay_cells", appConfig.GridMaxOverlayCells))

	cleanup := func() {
		_ = log.Sync()
	}
	return log, cleanup, nil
}
