package demo_di

import (
	"github.com/lintang-b-s/nearby-grid/pkg/datastructure"
	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	"github.com/lintang-b-s/nearby-grid/pkg/di/config"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"
	"github.com/lintang-b-s/nearby-grid/pkg/poi"

	"go.uber.org/zap"
)

func New(cfg *config.Config, grid *datastructure.Grid, scene *mapview.Scene, log *zap.Logger) (*demo.Demo, error) {
	opts := demo.Options{
		Center:          mapview.NewLatLng(cfg.MapCenterLat, cfg.MapCenterLng),
		Zoom:            cfg.MapZoom,
		TileURL:         cfg.MapTileURL,
		TileAttribution: cfg.MapTileAttribution,
		CellColor:       cfg.GridCellColor,
		CellWeight:      cfg.GridCellWeight,
		MaxOverlayCells: cfg.GridMaxOverlayCells,
	}

	d := demo.New(grid, scene, opts, log)
	if err := d.Start(poi.Restaurants()); err != nil {
		return nil, err
	}
	return d, nil
}
