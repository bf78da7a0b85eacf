package config

import (
	"errors"
	"strings"
	"time"

	logConfig "github.com/lintang-b-s/nearby-grid/pkg/logger/config"

	"github.com/spf13/viper"
)

type Config struct {
	GridCellSize        float64
	MapCenterLat        float64
	MapCenterLng        float64
	MapZoom             int
	MapTileURL          string
	MapTileAttribution  string
	GridCellColor       string
	GridCellWeight      int
	GridMaxOverlayCells int
	LogLevel            int
	LogTimeFormat       string
}

// New reads config.yaml from the working directory when present, environment variables
// override it.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{
		GridCellSize:        viper.GetFloat64("GRID_CELL_SIZE"),
		MapCenterLat:        viper.GetFloat64("MAP_CENTER_LAT"),
		MapCenterLng:        viper.GetFloat64("MAP_CENTER_LNG"),
		MapZoom:             viper.GetInt("MAP_ZOOM"),
		MapTileURL:          viper.GetString("MAP_TILE_URL"),
		MapTileAttribution:  viper.GetString("MAP_TILE_ATTRIBUTION"),
		GridCellColor:       viper.GetString("GRID_CELL_COLOR"),
		GridCellWeight:      viper.GetInt("GRID_CELL_WEIGHT"),
		GridMaxOverlayCells: viper.GetInt("GRID_MAX_OVERLAY_CELLS"),
		LogLevel:            viper.GetInt("LOG_LEVEL"),
		LogTimeFormat:       viper.GetString("LOG_TIME_FORMAT"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults() {
	// about 1km x 1km around Puno
	viper.SetDefault("GRID_CELL_SIZE", 0.01)
	viper.SetDefault("MAP_CENTER_LAT", -15.8402)
	viper.SetDefault("MAP_CENTER_LNG", -70.0219)
	viper.SetDefault("MAP_ZOOM", 13)
	viper.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault("MAP_TILE_ATTRIBUTION", `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`)
	viper.SetDefault("GRID_CELL_COLOR", "#ff7800")
	viper.SetDefault("GRID_CELL_WEIGHT", 1)
	viper.SetDefault("GRID_MAX_OVERLAY_CELLS", 2500)
	viper.SetDefault("LOG_LEVEL", logConfig.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
}

var (
	ErrInvalidCenter = errors.New("MAP_CENTER_LAT must be in [-90, 90] and MAP_CENTER_LNG in [-180, 180]")
	ErrInvalidZoom   = errors.New("MAP_ZOOM must be between 0 and 19")
)

// Validate checks the map settings, the cell size is checked by the grid itself.
func (c *Config) Validate() error {
	if c.MapCenterLat < -90 || c.MapCenterLat > 90 || c.MapCenterLng < -180 || c.MapCenterLng > 180 {
		return ErrInvalidCenter
	}
	if c.MapZoom < 0 || c.MapZoom > 19 {
		return ErrInvalidZoom
	}
	return nil
}
