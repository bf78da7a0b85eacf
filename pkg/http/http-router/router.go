package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/lintang-b-s/nearby-grid/docs"
	"github.com/lintang-b-s/nearby-grid/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/nearby-grid/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/nearby-grid/pkg/http/server"
	"github.com/lintang-b-s/nearby-grid/pkg/http/web"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router with the whole middleware chain.
func (api *API) Handler(mapService controllers.MapService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	mapRoutes := controllers.New(mapService, api.log)
	mapRoutes.Routes(group)
	router.NotFound = mapRoutes.NotFound()
	router.MethodNotAllowed = mapRoutes.MethodNotAllowed()

	static := web.FS()
	router.ServeFiles("/static/*filepath", static)
	pageHandler := http.FileServer(static)
	router.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		pageHandler.ServeHTTP(w, r)
	})

	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels, Gzip).Then(router)
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	mapService controllers.MapService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(mapService), config)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		api.log.Info(fmt.Sprintf("API run on port %d", config.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		api.log.Info("shutting down API")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
