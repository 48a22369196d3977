package mesh

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point clouds. A fixture is an
// SVG whose <circle> elements are the points: cx and cy are the planar
// coordinates, and the radius doubles as the elevation, which works out fine
// because the triangulation never looks at Z anyway. If anything goes wrong,
// it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]*Point, 0, len(circles))
	for _, circle := range circles {
		attr := func(key string) float64 {
			value, err := strconv.ParseFloat(circle.Attributes[key], 64)
			if err != nil {
				log.Fatalf("Invalid %s value %q in fixture %q", key, circle.Attributes[key], name)
			}
			return value
		}
		points = append(points, &Point{X: attr("cx"), Y: attr("cy"), Z: attr("r")})
	}
	return points
}
