package controllers

import (
	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type MapService interface {
	Scene() mapview.Snapshot
	MoveView(bounds orb.Bound) (mapview.Snapshot, error)
	Click(lat, lng float64) (demo.ClickResult, error)
	GridGeoJSON() *geojson.FeatureCollection
}

type envelope map[string]any
