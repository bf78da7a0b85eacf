package usecases

import (
	"errors"
	"sync"

	"github.com/lintang-b-s/nearby-grid/pkg"
	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

var errNoPopup = errors.New("click did not open a popup")

// MapService feeds browser events into the scene. the scene and the grid behind it are single
// threaded, so every call holds mu.
type MapService struct {
	log    *zap.Logger
	mu     sync.Mutex
	scene  Scene
	clicks ClickRecorder
}

func New(log *zap.Logger, scene Scene, clicks ClickRecorder) *MapService {
	return &MapService{
		log:    log,
		scene:  scene,
		clicks: clicks,
	}
}

func (s *MapService) Scene() mapview.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene.Snapshot()
}

func (s *MapService) MoveView(bounds orb.Bound) (mapview.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scene.MoveTo(bounds)
	return s.scene.Snapshot(), nil
}

func (s *MapService) Click(lat, lng float64) (demo.ClickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scene.Click(lat, lng)
	result, err := s.clicks.LastClick()
	if err != nil {
		return demo.ClickResult{}, err
	}

	popup, ok := s.scene.Popup()
	if !ok || popup != result.Popup {
		return demo.ClickResult{}, pkg.WrapErrorf(errNoPopup, pkg.ErrInternalServerError, "click at (%v, %v) did not open a popup", lat, lng)
	}

	s.log.Debug("click handled",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Int("nearby", len(result.Nearby)))
	return result, nil
}

func (s *MapService) GridGeoJSON() *geojson.FeatureCollection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene.RectanglesGeoJSON()
}
