package mapview

import "github.com/paulmach/orb"

// LatLng model info
// @Description	geographic position in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewLatLng(lat, lng float64) LatLng {
	return LatLng{Lat: lat, Lng: lng}
}

// View model info
// @Description	map centre and zoom level.
type View struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// TileLayer model info
// @Description	base tile layer, url in the {s}/{z}/{x}/{y} template form.
type TileLayer struct {
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
}

// Tooltip model info
// @Description	label bound to a marker.
type Tooltip struct {
	Content   string `json:"content"`
	Permanent bool   `json:"permanent"`
	Direction string `json:"direction"` // right, left, top, bottom, center, auto
}

// Marker model info
// @Description	marker for one point of interest.
type Marker struct {
	Position LatLng  `json:"position"`
	Title    string  `json:"title"`
	Tooltip  Tooltip `json:"tooltip"`
	Popup    string  `json:"popup"`
}

// Popup model info
// @Description	popup opened on the map. content is html.
type Popup struct {
	Position LatLng `json:"position"`
	Content  string `json:"content"`
}

// Rectangle model info
// @Description	rectangle overlay, used to draw grid cells.
type Rectangle struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
	Color     string `json:"color"`
	Weight    int    `json:"weight"`
}

// NewRectangle converts an orb bound (lng, lat points) into a rectangle.
func NewRectangle(b orb.Bound, color string, weight int) Rectangle {
	return Rectangle{
		SouthWest: NewLatLng(b.Min.Lat(), b.Min.Lon()),
		NorthEast: NewLatLng(b.Max.Lat(), b.Max.Lon()),
		Color:     color,
		Weight:    weight,
	}
}

func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.SouthWest.Lng, r.SouthWest.Lat},
		Max: orb.Point{r.NorthEast.Lng, r.NorthEast.Lat},
	}
}

type ViewChangedHandler func(bounds orb.Bound)

type ClickHandler func(lat, lng float64)

// MapView is what the demo needs from a map widget: draw layers, report the visible area and
// emit view-change and click events.
type MapView interface {
	SetView(center LatLng, zoom int)
	AddTileLayer(layer TileLayer)
	AddMarker(marker Marker)
	AddPopup(popup Popup)
	AddRectangle(rect Rectangle)
	ClearRectangles()
	VisibleBounds() orb.Bound

	OnViewChanged(handler ViewChangedHandler)
	OnClick(handler ClickHandler)
}
