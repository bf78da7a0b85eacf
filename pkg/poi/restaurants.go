package poi

import "github.com/lintang-b-s/nearby-grid/pkg/datastructure"

// Restaurants are the places plotted on the map, around the Plaza de Armas of Puno.
func Restaurants() []datastructure.Point {
	return []datastructure.Point{
		datastructure.NewPoint("Pizza Pata", -15.8402, -70.0219, "Pizzería gourmet con ingredientes locales"),
		datastructure.NewPoint("Mojsa Restaurant", -15.8389, -70.0278, "Cocina andina de alta calidad"),
		datastructure.NewPoint("La Casona Restaurant", -15.8350, -70.0195, "Platos típicos en ambiente colonial"),
		datastructure.NewPoint("Balcones de Puno", -15.8321, -70.0256, "Vista espectacular del lago Titicaca"),
		datastructure.NewPoint("Café Bar de la Casa del Corregidor", -15.8372, -70.0281, "Café histórico con música en vivo"),
		datastructure.NewPoint("Colors Restaurant", -15.8425, -70.0230, "Fusión de sabores internacionales y locales"),
		datastructure.NewPoint("Tulipan's Restaurant & Pizzería", -15.8410, -70.0330, "Especialidad en pizzas y pastas"),
	}
}
