package main

import (
	"log"

	"github.com/lintang-b-s/nearby-grid/pkg/di"

	"go.uber.org/zap"
)

func main() {
	srv, cleanup, err := di.InitializeMapService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := srv.Wait(); err != nil {
		srv.Log.Error("map api stopped", zap.Error(err))
		return
	}
	srv.Log.Info("map api stopped")
}
