package geometry

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/polyfold/earclip/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

func dbgContext(minX, minY, maxX, maxY, scale float64) *gg.Context {
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)
	return c
}

// Draw the path in the terminal (iTerm only) for debugging.
func (path Path) dbgDraw(scale float64) {
	minX, minY, maxX, maxY := BoundingBox(path)
	c := dbgContext(minX, minY, maxX, maxY, scale)

	c.SetLineWidth(2 / scale)
	c.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/earclip_path.png")
	imgcat.CatFile("/tmp/earclip_path.png", os.Stdout)
}

// Draw a triangulation in the terminal, one stroke color per triangle so
// the ear-cut order is visible.
func dbgDrawTriangles(triangles []Triangle, scale float64) {
	var path Path
	for _, t := range triangles {
		path = append(path, t.Points()...)
	}
	minX, minY, maxX, maxY := BoundingBox(path)
	c := dbgContext(minX, minY, maxX, maxY, scale)

	c.SetLineWidth(2 / scale)
	for i, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		hue := float64(i) / float64(len(triangles))
		c.SetRGB(0.2+0.3*hue, 0.5, 0.3)
		c.FillPreserve()
		c.SetHexColor("#00ffff")
		c.Stroke()

		// Label the centroid so the triangle can be matched to its DbgName
		// in log output. The un-flip keeps the label upright. No aurora
		// coloring here; ANSI escapes don't rasterize.
		cx := (t.A.X + t.B.X + t.C.X) / 3
		cy := (t.A.Y + t.B.Y + t.C.Y) / 3
		c.Push()
		c.Translate(cx, cy)
		c.Scale(1/scale, -1/scale)
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(t), 0, 0, 0.5, 0.5)
		c.Pop()
	}

	c.SavePNG("/tmp/earclip_triangles.png")
	imgcat.CatFile("/tmp/earclip_triangles.png", os.Stdout)
}
