package geo

import "math"

const (
	earthRadiusKM = 6371.0
)

// https://scikit-learn.org/stable/modules/generated/sklearn.metrics.pairwise.haversine_distances.html
// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return math.Pow(math.Sin(angleRad/2.0), 2)
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// HaversineDistance returns the great circle distance in km between two points given in degrees.
func HaversineDistance(latOne, lngOne, latTwo, lngTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	lngOne = degreeToRadians(lngOne)
	latTwo = degreeToRadians(latTwo)
	lngTwo = degreeToRadians(lngTwo)

	dist := 2.0 * math.Asin(math.Sqrt(havFunction(latOne-latTwo)+math.Cos(latOne)*math.Cos(latTwo)*havFunction(lngOne-lngTwo)))
	return earthRadiusKM * dist
}

// HaversineMeters is HaversineDistance rounded to whole metres, good enough for popup labels.
func HaversineMeters(latOne, lngOne, latTwo, lngTwo float64) int {
	return int(math.Round(HaversineDistance(latOne, lngOne, latTwo, lngTwo) * 1000))
}
