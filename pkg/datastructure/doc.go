package datastructure

// Point model info
// @Description	point of interest plotted on the map. identity is structural, there is no id field.
type Point struct {
	Name        string  `json:"name"`        // name shown on the marker tooltip
	Lat         float64 `json:"lat"`         // latitude in degrees
	Lng         float64 `json:"lng"`         // longitude in degrees
	Description string  `json:"description"` // short text shown in popups
}

func NewPoint(name string, lat, lng float64, description string) Point {
	return Point{
		Name:        name,
		Lat:         lat,
		Lng:         lng,
		Description: description,
	}
}

// Neighbour model info
// @Description	point found by a grid query, annotated with its planar distance (degrees) to the query location.
type Neighbour struct {
	Point    `json:"point"`
	Distance float64 `json:"distance"`
}
