package demo

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/lintang-b-s/nearby-grid/pkg"
	"github.com/lintang-b-s/nearby-grid/pkg/datastructure"
	"github.com/lintang-b-s/nearby-grid/pkg/geo"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

const (
	nearbyHeader   = "Restaurantes cercanos:"
	noNearbyPlaces = "No hay restaurantes cercanos"
)

var (
	ErrAlreadyStarted = errors.New("demo already started")
	ErrNoClick        = errors.New("no click handled yet")
)

type Options struct {
	Center          mapview.LatLng
	Zoom            int
	TileURL         string
	TileAttribution string
	CellColor       string
	CellWeight      int
	MaxOverlayCells int
}

func DefaultOptions() Options {
	return Options{
		Center:          mapview.NewLatLng(-15.8402, -70.0219),
		Zoom:            13,
		TileURL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		TileAttribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		CellColor:       "#ff7800",
		CellWeight:      1,
		MaxOverlayCells: 2500,
	}
}

// Demo plots points of interest on a map view, keeps the grid overlay in sync with the visible
// area and answers clicks with the places around the clicked spot.
type Demo struct {
	grid *datastructure.Grid
	view mapview.MapView
	opts Options
	log  *zap.Logger

	started      bool
	lastClick    ClickResult
	lastClickErr error
}

func New(grid *datastructure.Grid, view mapview.MapView, opts Options, log *zap.Logger) *Demo {
	return &Demo{
		grid: grid,
		view: view,
		opts: opts,
		log:  log,

		lastClickErr: ErrNoClick,
	}
}

// Start sets up the base map, indexes points (one marker per indexed point) and subscribes to
// the view events. it stops at the first point the grid rejects. Start runs once, later calls
// return ErrAlreadyStarted so the handlers are never subscribed twice.
func (d *Demo) Start(points []datastructure.Point) error {
	if d.started {
		return ErrAlreadyStarted
	}
	d.started = true

	d.view.SetView(d.opts.Center, d.opts.Zoom)
	d.view.AddTileLayer(mapview.TileLayer{
		URLTemplate: d.opts.TileURL,
		Attribution: d.opts.TileAttribution,
	})

	for _, p := range points {
		if err := d.grid.Insert(p); err != nil {
			return pkg.WrapErrorf(err, pkg.ErrUnprocessable, "point %q (%v, %v) can not be indexed: %v", p.Name, p.Lat, p.Lng, err)
		}
		d.view.AddMarker(markerFor(p))
	}

	d.view.OnViewChanged(d.handleViewChanged)
	d.view.OnClick(d.handleClick)

	d.log.Info("points indexed",
		zap.Int("points", d.grid.Len()),
		zap.Int("cells", d.grid.CellCount()),
		zap.Float64("cell_size", d.grid.Size()))
	return nil
}

func markerFor(p datastructure.Point) mapview.Marker {
	return mapview.Marker{
		Position: mapview.NewLatLng(p.Lat, p.Lng),
		Title:    p.Name,
		Tooltip: mapview.Tooltip{
			Content:   html.EscapeString(p.Name),
			Permanent: true,
			Direction: "right",
		},
		Popup: html.EscapeString(fmt.Sprintf("%s - %s", p.Name, p.Description)),
	}
}

// handleViewChanged redraws the overlay: the old rectangles are removed first so repeated moves
// never pile up shapes.
func (d *Demo) handleViewChanged(_ orb.Bound) {
	bounds := d.view.VisibleBounds()
	d.view.ClearRectangles()

	cells, err := d.grid.CellRange(bounds)
	if err != nil {
		d.log.Warn("can not align visible bounds to the grid", zap.Error(err))
		return
	}
	if d.opts.MaxOverlayCells > 0 && cells.Len() > d.opts.MaxOverlayCells {
		d.log.Warn("too many visible cells, grid overlay skipped",
			zap.Int("cells", cells.Len()),
			zap.Int("max_cells", d.opts.MaxOverlayCells))
		return
	}

	for _, key := range cells.Keys() {
		d.view.AddRectangle(mapview.NewRectangle(d.grid.CellBounds(key), d.opts.CellColor, d.opts.CellWeight))
	}
	d.log.Debug("grid overlay redrawn", zap.Int("cells", cells.Len()))
}

// handleClick queries the grid once, opens the popup and keeps the result for LastClick.
func (d *Demo) handleClick(lat, lng float64) {
	d.lastClick, d.lastClickErr = ClickResult{}, nil

	nearby, err := d.Nearby(lat, lng)
	if err != nil {
		d.log.Warn("nearby query failed", zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		d.lastClickErr = err
		return
	}

	popup := mapview.Popup{
		Position: mapview.NewLatLng(lat, lng),
		Content:  FormatNearby(nearby),
	}
	d.view.AddPopup(popup)
	d.lastClick = ClickResult{Popup: popup, Nearby: placesFor(lat, lng, nearby)}
}

// LastClick returns what the most recent click produced: the popup it opened and the places
// listed in it, or the error that kept it from opening one.
func (d *Demo) LastClick() (ClickResult, error) {
	return d.lastClick, d.lastClickErr
}

func placesFor(lat, lng float64, nearby []datastructure.Neighbour) []Place {
	places := make([]Place, 0, len(nearby))
	for _, n := range nearby {
		places = append(places, Place{
			Neighbour: n,
			Meters:    geo.HaversineMeters(lat, lng, n.Lat, n.Lng),
		})
	}
	return places
}

// Nearby returns the places around (lat, lng), nearest first.
func (d *Demo) Nearby(lat, lng float64) ([]datastructure.Neighbour, error) {
	nearby, err := d.grid.Query(lat, lng)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrUnprocessable, "can not query (%v, %v): %v", lat, lng, err)
	}
	return nearby, nil
}

// FormatNearby renders the popup html: a header then "index. name - description" per place.
func FormatNearby(nearby []datastructure.Neighbour) string {
	lines := make([]string, 0, len(nearby)+1)
	lines = append(lines, nearbyHeader)
	if len(nearby) == 0 {
		lines = append(lines, noNearbyPlaces)
	}
	for i, n := range nearby {
		lines = append(lines, fmt.Sprintf("%d. %s - %s",
			i+1, html.EscapeString(n.Name), html.EscapeString(n.Description)))
	}
	return strings.Join(lines, "<br>")
}

// ClickResult model info
//
//	@Description	popup opened for a click and the places listed in it.
type ClickResult struct {
	Popup  mapview.Popup `json:"popup"`
	Nearby []Place       `json:"nearby"`
}

// Place model info
//
//	@Description	nearby place with its great circle distance to the click, in whole metres.
type Place struct {
	datastructure.Neighbour
	Meters int `json:"meters"`
}
