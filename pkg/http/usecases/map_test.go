package usecases

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/lintang-b-s/nearby-grid/pkg"
	"github.com/lintang-b-s/nearby-grid/pkg/datastructure"
	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"
	"github.com/lintang-b-s/nearby-grid/pkg/poi"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *MapService {
	grid, err := datastructure.NewGrid(0.01)
	require.NoError(t, err)

	scene := mapview.NewScene()
	d := demo.New(grid, scene, demo.DefaultOptions(), zap.NewNop())
	require.NoError(t, d.Start(poi.Restaurants()))

	return New(zap.NewNop(), scene, d)
}

func TestMoveView(t *testing.T) {
	s := newService(t)

	snap, err := s.MoveView(orb.Bound{Min: orb.Point{-70.035, -15.845}, Max: orb.Point{-70.015, -15.832}})
	require.NoError(t, err)
	assert.Len(t, snap.Rectangles, 6)
	assert.Len(t, snap.Markers, 7)

	assert.Len(t, s.GridGeoJSON().Features, 6)
	assert.Equal(t, snap, s.Scene())
}

func TestClick(t *testing.T) {
	s := newService(t)

	result, err := s.Click(-15.8402, -70.0219)
	require.NoError(t, err)
	require.NotEmpty(t, result.Nearby)
	assert.Equal(t, "Pizza Pata", result.Nearby[0].Name)
	assert.Equal(t, mapview.NewLatLng(-15.8402, -70.0219), result.Popup.Position)
	assert.Contains(t, result.Popup.Content, "1. Pizza Pata")

	require.NotNil(t, s.Scene().Popup)
	assert.Equal(t, result.Popup, *s.Scene().Popup)

	t.Run("popup lists exactly the returned places", func(t *testing.T) {
		lines := strings.Split(result.Popup.Content, "<br>")
		require.Len(t, lines, len(result.Nearby)+1)
		for i, place := range result.Nearby {
			assert.Equal(t, fmt.Sprintf("%d. %s - %s", i+1, place.Name, place.Description), lines[i+1])
		}
	})

	t.Run("non finite click leaves the popup alone", func(t *testing.T) {
		_, err := s.Click(math.NaN(), 0)
		require.Error(t, err)
		assert.Equal(t, pkg.ErrUnprocessable, pkg.ErrorCode(err))
		assert.Equal(t, result.Popup, *s.Scene().Popup)
	})
}

func TestConcurrentEvents(t *testing.T) {
	s := newService(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.MoveView(orb.Bound{Min: orb.Point{-70.035, -15.845}, Max: orb.Point{-70.015, -15.832}})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Click(-15.84, -70.02)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Scene().Rectangles, 6)
}

type staleRecorder struct {
	result demo.ClickResult
}

func (r staleRecorder) LastClick() (demo.ClickResult, error) {
	return r.result, nil
}

func TestClickRejectsMismatchedPopup(t *testing.T) {
	scene := mapview.NewScene()
	scene.OnClick(func(lat, lng float64) {
		scene.AddPopup(mapview.Popup{Position: mapview.NewLatLng(lat, lng), Content: "fresh"})
	})
	s := New(zap.NewNop(), scene, staleRecorder{result: demo.ClickResult{Popup: mapview.Popup{Content: "stale"}}})

	_, err := s.Click(1, 1)
	require.Error(t, err)
	assert.Equal(t, pkg.ErrInternalServerError, pkg.ErrorCode(err))
}
