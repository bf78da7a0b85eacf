package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/lintang-b-s/nearby-grid/pkg/datastructure"
	"github.com/lintang-b-s/nearby-grid/pkg/geo"
	"github.com/lintang-b-s/nearby-grid/pkg/poi"
)

var (
	lat      = flag.Float64("lat", -15.8402, "latitude of the query point")
	lng      = flag.Float64("lng", -70.0219, "longitude of the query point")
	cellSize = flag.Float64("cell", 0.01, "grid cell size in degrees")
)

func main() {
	flag.Parse()

	grid, err := datastructure.NewGrid(*cellSize)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range poi.Restaurants() {
		if err := grid.Insert(p); err != nil {
			log.Fatal(err)
		}
	}

	nearby, err := grid.Query(*lat, *lng)
	if err != nil {
		log.Fatal(err)
	}
	if len(nearby) == 0 {
		fmt.Println("No places nearby")
		return
	}
	for i, n := range nearby {
		meters := geo.HaversineMeters(*lat, *lng, n.Lat, n.Lng)
		fmt.Printf("%d. %s - %s (~%d m)\n", i+1, n.Name, n.Description, meters)
	}
}
