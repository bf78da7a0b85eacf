//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	"github.com/lintang-b-s/nearby-grid/pkg/di/config"
	shortcontext "github.com/lintang-b-s/nearby-grid/pkg/di/context"
	demo_di "github.com/lintang-b-s/nearby-grid/pkg/di/demo"
	grid_di "github.com/lintang-b-s/nearby-grid/pkg/di/grid"
	logger_di "github.com/lintang-b-s/nearby-grid/pkg/di/logger"
	mapHttp "github.com/lintang-b-s/nearby-grid/pkg/http"
	"github.com/lintang-b-s/nearby-grid/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/nearby-grid/pkg/http/usecases"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	grid_di.New,
	mapview.NewScene,
	demo_di.New,
)

var mapSet = wire.NewSet(
	defaultSet,
	NewMapService,
	NewMapAPIServer,
)

func NewMapService(log *zap.Logger, scene *mapview.Scene, d *demo.Demo) controllers.MapService {
	return usecases.New(log, scene, d)
}

func NewMapAPIServer(ctx context.Context, log *zap.Logger,
	mapService controllers.MapService) (*mapHttp.Server, error) {
	api := mapHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, mapService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeMapService() (*mapHttp.Server, func(), error) {

	panic(wire.Build(mapSet))
}
