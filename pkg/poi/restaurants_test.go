package poi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurants(t *testing.T) {
	points := Restaurants()
	assert.Len(t, points, 7)

	names := make(map[string]bool, len(points))
	for _, p := range points {
		assert.False(t, names[p.Name], "duplicate name %s", p.Name)
		names[p.Name] = true

		assert.False(t, math.IsNaN(p.Lat) || math.IsNaN(p.Lng))
		assert.InDelta(t, -15.84, p.Lat, 0.05)
		assert.InDelta(t, -70.02, p.Lng, 0.05)
		assert.NotEmpty(t, p.Description)
	}

	t.Run("returns a fresh slice", func(t *testing.T) {
		first := Restaurants()
		first[0].Name = "changed"
		assert.Equal(t, "Pizza Pata", Restaurants()[0].Name)
	})
}
