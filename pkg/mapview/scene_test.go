package mapview

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneLayers(t *testing.T) {
	s := NewScene()

	s.SetView(NewLatLng(-15.8402, -70.0219), 13)
	s.AddTileLayer(TileLayer{URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"})
	s.AddMarker(Marker{Position: NewLatLng(-15.8402, -70.0219), Title: "Pizza Pata"})
	s.AddMarker(Marker{Position: NewLatLng(-15.8389, -70.0278), Title: "Mojsa Restaurant"})

	snap := s.Snapshot()
	assert.Equal(t, View{Center: NewLatLng(-15.8402, -70.0219), Zoom: 13}, snap.View)
	require.NotNil(t, snap.TileLayer)
	require.Len(t, snap.Markers, 2)
	assert.Equal(t, "Pizza Pata", snap.Markers[0].Title)
	assert.Equal(t, "Mojsa Restaurant", snap.Markers[1].Title)
	assert.Nil(t, snap.Popup)
	assert.Empty(t, snap.Rectangles)

	t.Run("popup replaces previous popup", func(t *testing.T) {
		s.AddPopup(Popup{Position: NewLatLng(1, 1), Content: "first"})
		s.AddPopup(Popup{Position: NewLatLng(2, 2), Content: "second"})

		popup, ok := s.Popup()
		require.True(t, ok)
		assert.Equal(t, "second", popup.Content)
	})

	t.Run("clear rectangles", func(t *testing.T) {
		s.AddRectangle(NewRectangle(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, "#ff7800", 1))
		s.AddRectangle(NewRectangle(orb.Bound{Min: orb.Point{1, 0}, Max: orb.Point{2, 1}}, "#ff7800", 1))
		before := s.Snapshot()
		assert.Len(t, before.Rectangles, 2)

		s.ClearRectangles()
		assert.Empty(t, s.Snapshot().Rectangles)
		assert.Len(t, before.Rectangles, 2, "snapshot must not alias the scene")
	})
}

func TestSceneEvents(t *testing.T) {
	s := NewScene()

	var order []string
	var gotBounds orb.Bound
	s.OnViewChanged(func(b orb.Bound) {
		order = append(order, "view-1")
		gotBounds = b
	})
	s.OnViewChanged(func(b orb.Bound) {
		order = append(order, "view-2")
	})

	var clicked LatLng
	s.OnClick(func(lat, lng float64) {
		order = append(order, "click")
		clicked = NewLatLng(lat, lng)
	})

	bounds := orb.Bound{Min: orb.Point{-70.05, -15.86}, Max: orb.Point{-70.0, -15.82}}
	s.MoveTo(bounds)
	s.Click(-15.84, -70.02)

	assert.Equal(t, []string{"view-1", "view-2", "click"}, order)
	assert.Equal(t, bounds, gotBounds)
	assert.Equal(t, bounds, s.VisibleBounds())
	assert.Equal(t, NewLatLng(-15.84, -70.02), clicked)
}

func TestRectangleBound(t *testing.T) {
	b := orb.Bound{Min: orb.Point{-70.03, -15.85}, Max: orb.Point{-70.02, -15.84}}
	r := NewRectangle(b, "#ff7800", 1)

	assert.Equal(t, NewLatLng(-15.85, -70.03), r.SouthWest)
	assert.Equal(t, NewLatLng(-15.84, -70.02), r.NorthEast)
	assert.Equal(t, b, r.Bound())
}

func TestRectanglesGeoJSON(t *testing.T) {
	s := NewScene()
	s.AddRectangle(NewRectangle(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, "#ff7800", 1))

	fc := s.RectanglesGeoJSON()
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Polygon", fc.Features[0].Geometry.GeoJSONType())
	assert.Equal(t, "#ff7800", fc.Features[0].Properties["color"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
}
