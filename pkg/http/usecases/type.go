package usecases

import (
	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Scene is the map view the browser mirrors.
type Scene interface {
	MoveTo(bounds orb.Bound)
	Click(lat, lng float64)
	Popup() (mapview.Popup, bool)
	Snapshot() mapview.Snapshot
	RectanglesGeoJSON() *geojson.FeatureCollection
}

// ClickRecorder hands back what the last click event produced.
type ClickRecorder interface {
	LastClick() (demo.ClickResult, error)
}
