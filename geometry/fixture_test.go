package geometry

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs paths. This is not a full
// (or even correct) svg handler. It parses the SVG, finds whatever the
// first polygon is, and converts it into a CCW Path. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var path Path
	for _, pairString := range strings.Fields(pointString) {
		coords := strings.Split(pairString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pairString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		path = append(path, Point{x, y})
	}

	// Normalize fixtures to CCW so area assertions don't care how the
	// polygon was authored.
	if IsPolygonClockwise(path) {
		path = path.Reverse()
	}
	return path
}

// Some ad hoc code specified fixtures

// Convex n-gon. The rotation offset keeps vertex coordinates away from
// coincidences like shared y values, which the exact-comparison
// predicates are entitled to be fussy about.
func RegularPolygon(n int, radius float64) Path {
	path := make(Path, 0, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.123
		path = append(path, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return path
}

// Non-convex star with vertices alternating between two radii.
func SimpleStar(points int) Path {
	const outerRadius = 5
	const innerRadius = 2
	n := points * 2
	path := make(Path, 0, n)
	for i := 0; i < n; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2*math.Pi*float64(i)/float64(n) + 0.123
		path = append(path, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return path
}
