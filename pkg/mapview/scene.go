package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Scene is an in-memory MapView. it keeps every layer the demo asked for so the browser can
// render them, and it dispatches the browser's events to the subscribed handlers.
// Scene is not safe for concurrent use.
type Scene struct {
	view       View
	tileLayer  *TileLayer
	markers    []Marker
	popup      *Popup
	rectangles []Rectangle
	bounds     orb.Bound

	viewChangedHandlers []ViewChangedHandler
	clickHandlers       []ClickHandler
}

var _ MapView = (*Scene)(nil)

func NewScene() *Scene {
	return &Scene{
		markers:    make([]Marker, 0),
		rectangles: make([]Rectangle, 0),
	}
}

func (s *Scene) SetView(center LatLng, zoom int) {
	s.view = View{Center: center, Zoom: zoom}
}

func (s *Scene) AddTileLayer(layer TileLayer) {
	s.tileLayer = &layer
}

func (s *Scene) AddMarker(marker Marker) {
	s.markers = append(s.markers, marker)
}

// AddPopup opens popup, closing the previous one.
func (s *Scene) AddPopup(popup Popup) {
	s.popup = &popup
}

func (s *Scene) AddRectangle(rect Rectangle) {
	s.rectangles = append(s.rectangles, rect)
}

func (s *Scene) ClearRectangles() {
	s.rectangles = s.rectangles[:0]
}

func (s *Scene) VisibleBounds() orb.Bound {
	return s.bounds
}

func (s *Scene) OnViewChanged(handler ViewChangedHandler) {
	s.viewChangedHandlers = append(s.viewChangedHandlers, handler)
}

func (s *Scene) OnClick(handler ClickHandler) {
	s.clickHandlers = append(s.clickHandlers, handler)
}

// MoveTo records the area now visible in the browser and fires the view changed handlers.
func (s *Scene) MoveTo(bounds orb.Bound) {
	s.bounds = bounds
	for _, h := range s.viewChangedHandlers {
		h(bounds)
	}
}

// Click fires the click handlers in subscription order.
func (s *Scene) Click(lat, lng float64) {
	for _, h := range s.clickHandlers {
		h(lat, lng)
	}
}

func (s *Scene) Popup() (Popup, bool) {
	if s.popup == nil {
		return Popup{}, false
	}
	return *s.popup, true
}

// Snapshot model info
// @Description	every layer currently on the map.
type Snapshot struct {
	View       View        `json:"view"`
	TileLayer  *TileLayer  `json:"tile_layer,omitempty"`
	Markers    []Marker    `json:"markers"`
	Popup      *Popup      `json:"popup,omitempty"`
	Rectangles []Rectangle `json:"rectangles"`
}

// Snapshot copies the scene, later changes to the scene do not show up in it.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		View:       s.view,
		Markers:    append(make([]Marker, 0, len(s.markers)), s.markers...),
		Rectangles: append(make([]Rectangle, 0, len(s.rectangles)), s.rectangles...),
	}
	if s.tileLayer != nil {
		layer := *s.tileLayer
		snap.TileLayer = &layer
	}
	if s.popup != nil {
		popup := *s.popup
		snap.Popup = &popup
	}
	return snap
}

// RectanglesGeoJSON returns the rectangle overlay as polygons, one feature per rectangle.
func (s *Scene) RectanglesGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range s.rectangles {
		f := geojson.NewFeature(r.Bound().ToPolygon())
		f.Properties["color"] = r.Color
		f.Properties["weight"] = r.Weight
		fc.Append(f)
	}
	return fc
}
