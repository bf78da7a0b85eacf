package grid_di

import (
	"github.com/lintang-b-s/nearby-grid/pkg/datastructure"
	"github.com/lintang-b-s/nearby-grid/pkg/di/config"
)

func New(cfg *config.Config) (*datastructure.Grid, error) {
	return datastructure.NewGrid(cfg.GridCellSize)
}
