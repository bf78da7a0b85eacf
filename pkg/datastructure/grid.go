package datastructure

import (
	"errors"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

var (
	ErrNonFiniteCoordinate  = errors.New("coordinate must be a finite number")
	ErrCoordinateOutOfRange = errors.New("coordinate is outside the addressable grid")
	ErrInvalidCellSize      = errors.New("cell size must be a finite number greater than zero")
)

// cell indices are kept inside int32 so neighbour offsets never overflow.
const maxCellIndex = math.MaxInt32

// CellKey is the (row, col) of a grid cell: (floor(lat/size), floor(lng/size)).
type CellKey struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type gridEntry struct {
	point Point
	seq   int // global insertion order, used to break distance ties
}

// Grid is a uniform grid index. every point lives in exactly one cell, picked by its
// coordinates and the fixed cell size. the grid is static once loaded: no delete, no resize.
type Grid struct {
	size  float64
	cells map[CellKey][]gridEntry
	count int
}

func NewGrid(size float64) (*Grid, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, ErrInvalidCellSize
	}
	return &Grid{
		size:  size,
		cells: make(map[CellKey][]gridEntry),
	}, nil
}

// Size returns the cell edge length in degrees.
func (g *Grid) Size() float64 {
	return g.size
}

// Len returns the number of inserted points.
func (g *Grid) Len() int {
	return g.count
}

// CellCount returns the number of non-empty cells.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

func (g *Grid) cellIndex(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFiniteCoordinate
	}
	idx := math.Floor(v / g.size)
	if idx > maxCellIndex || idx < -maxCellIndex {
		return 0, ErrCoordinateOutOfRange
	}
	return int(idx), nil
}

func (g *Grid) CellKey(lat, lng float64) (CellKey, error) {
	row, err := g.cellIndex(lat)
	if err != nil {
		return CellKey{}, err
	}
	col, err := g.cellIndex(lng)
	if err != nil {
		return CellKey{}, err
	}
	return CellKey{Row: row, Col: col}, nil
}

// Insert appends p to the cell containing it. Insert only touches the index, drawing a marker
// for the point is up to the caller.
func (g *Grid) Insert(p Point) error {
	key, err := g.CellKey(p.Lat, p.Lng)
	if err != nil {
		return err
	}
	g.cells[key] = append(g.cells[key], gridEntry{point: p, seq: g.count})
	g.count++
	return nil
}

// Query returns every point in the 3x3 block of cells centred on the cell of (lat, lng),
// nearest first. distance is planar: sqrt(dLat^2 + dLng^2) in degrees. equal distances keep
// insertion order. points further than one cell away are never returned, even when they are
// the nearest ones.
func (g *Grid) Query(lat, lng float64) ([]Neighbour, error) {
	center, err := g.CellKey(lat, lng)
	if err != nil {
		return nil, err
	}

	found := make([]gridEntry, 0)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			key := CellKey{Row: center.Row + dx, Col: center.Col + dy}
			found = append(found, g.cells[key]...)
		}
	}

	distances := make([]float64, len(found))
	for i, e := range found {
		distances[i] = planarDistance(lat, lng, e.point.Lat, e.point.Lng)
	}

	order := make([]int, len(found))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if distances[ia] != distances[ib] {
			return distances[ia] < distances[ib]
		}
		return found[ia].seq < found[ib].seq
	})

	results := make([]Neighbour, 0, len(found))
	for _, i := range order {
		results = append(results, Neighbour{Point: found[i].point, Distance: distances[i]})
	}
	return results, nil
}

func planarDistance(latOne, lngOne, latTwo, lngTwo float64) float64 {
	dLat := latOne - latTwo
	dLng := lngOne - lngTwo
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// CellBounds returns the area covered by a cell. orb points are (lng, lat).
func (g *Grid) CellBounds(key CellKey) orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(key.Col) * g.size, float64(key.Row) * g.size},
		Max: orb.Point{float64(key.Col+1) * g.size, float64(key.Row+1) * g.size},
	}
}

// CellRange is an inclusive block of cells.
type CellRange struct {
	MinRow int `json:"min_row"`
	MaxRow int `json:"max_row"`
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
}

func (r CellRange) Rows() int {
	return r.MaxRow - r.MinRow + 1
}

func (r CellRange) Cols() int {
	return r.MaxCol - r.MinCol + 1
}

// Len returns the number of cells in the range.
func (r CellRange) Len() int {
	return r.Rows() * r.Cols()
}

// Keys lists the cells row by row, south to north then west to east.
func (r CellRange) Keys() []CellKey {
	keys := make([]CellKey, 0, r.Len())
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			keys = append(keys, CellKey{Row: row, Col: col})
		}
	}
	return keys
}

// CellRange aligns b to cell boundaries: the min corner is floored and the max corner ceiled
// to a multiple of the cell size. the returned cells cover b exactly.
func (g *Grid) CellRange(b orb.Bound) (CellRange, error) {
	minRow, err := g.cellIndex(b.Min.Lat())
	if err != nil {
		return CellRange{}, err
	}
	minCol, err := g.cellIndex(b.Min.Lon())
	if err != nil {
		return CellRange{}, err
	}
	maxRow, err := g.ceilCellIndex(b.Max.Lat())
	if err != nil {
		return CellRange{}, err
	}
	maxCol, err := g.ceilCellIndex(b.Max.Lon())
	if err != nil {
		return CellRange{}, err
	}

	// ceil gives the boundary after the last cell, a degenerate bound still covers one cell.
	maxRow, maxCol = maxRow-1, maxCol-1
	if maxRow < minRow {
		maxRow = minRow
	}
	if maxCol < minCol {
		maxCol = minCol
	}
	return CellRange{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}, nil
}

func (g *Grid) ceilCellIndex(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFiniteCoordinate
	}
	idx := math.Ceil(v / g.size)
	if idx > maxCellIndex || idx < -maxCellIndex {
		return 0, ErrCoordinateOutOfRange
	}
	return int(idx), nil
}
