package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/polyfold/earclip"
	"github.com/polyfold/earclip/geometry"
)

// Demo of triangulation as a bake step: read a single <polygon> from an
// SVG file, triangulate it, pack it into vertex/index buffers, and render
// the result to a PNG. With --cat the PNG is also printed to the terminal
// (iTerm only).

const drawPadding = 20

var (
	svgPath   = kingpin.Arg("svg", "SVG file containing a single <polygon> element.").Required().ExistingFile()
	outPath   = kingpin.Flag("out", "Output PNG path.").Short('o').Default("triangulation.png").String()
	scale     = kingpin.Flag("scale", "Pixels per SVG unit.").Default("40").Float64()
	depth     = kingpin.Flag("depth", "Z value baked into every mesh vertex.").Default("0").Float64()
	clockwise = kingpin.Flag("clockwise", "Emit clockwise faces instead of counterclockwise.").Bool()
	cat       = kingpin.Flag("cat", "Print the PNG to the terminal (iTerm only).").Bool()
)

func main() {
	kingpin.Parse()

	points, err := readPolygon(*svgPath)
	if err != nil {
		kingpin.Fatalf("reading %s: %v", *svgPath, err)
	}

	triangles, err := earclip.Triangulate(points)
	if err != nil {
		kingpin.Fatalf("triangulating %d points: %v", len(points), err)
	}

	mesh := &earclip.Mesh{}
	if err := earclip.AddTrianglesToMesh(mesh, triangles, *depth, *clockwise); err != nil {
		kingpin.Fatalf("assembling mesh: %v", err)
	}
	fmt.Printf("%d points -> %d triangles, %d unique vertices, %d indices\n",
		len(points), len(triangles), len(mesh.Vertices), len(mesh.Indices))

	if err := render(triangles, *outPath, *scale); err != nil {
		kingpin.Fatalf("rendering: %v", err)
	}
	fmt.Println("wrote", *outPath)
	if *cat {
		imgcat.CatFile(*outPath, os.Stdout)
	}
}

func readPolygon(path string) ([]earclip.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		return nil, errors.Errorf("expected exactly one polygon element, found %d", len(polygons))
	}

	var points []earclip.Point
	for _, pairString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pairString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point %q", pairString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x in %q", pairString)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y in %q", pairString)
		}
		points = append(points, earclip.Point{X: x, Y: y})
	}
	return points, nil
}

func render(triangles []earclip.Triangle, outPath string, scale float64) error {
	var all earclip.Path
	for _, t := range triangles {
		all = append(all, t.Points()...)
	}
	minX, minY, maxX, maxY := geometry.BoundingBox(all)

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	// Flip so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2 / scale)
	for i, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		// Shade by ear-cut order so the decomposition is readable
		shade := 0.25 + 0.5*float64(i)/float64(len(triangles))
		c.SetRGB(0.1, shade, 0.3)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	return c.SavePNG(outPath)
}
