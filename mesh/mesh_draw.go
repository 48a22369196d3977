package mesh

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the triangulation so circumcircles hanging past the hull
// stay visible.
const dbgDrawPadding = 100

// Draw the settled triangulation and print it in the terminal (iTerm only).
// Handy for eyeballing a repair cascade gone wrong.
func (m *Mesh) dbgDraw(scale float64, withCircumcircles bool) {
	cells := m.Collect()
	if len(cells) == 0 {
		return
	}

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, cell := range cells {
		for _, v := range cell.Vertices {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}

	// Set up the context
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

	c.SetLineWidth(2)
	for _, cell := range cells {
		c.MoveTo(cell.Vertices[0].X, cell.Vertices[0].Y)
		c.LineTo(cell.Vertices[1].X, cell.Vertices[1].Y)
		c.LineTo(cell.Vertices[2].X, cell.Vertices[2].Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if withCircumcircles {
		c.SetRGB(1, 0.5, 0)
		for _, cell := range cells {
			center := cell.Circumcenter()
			c.DrawCircle(center.X, center.Y, math.Sqrt(cell.CircumradiusSq()))
			c.Stroke()
		}
	}

	c.SavePNG("/tmp/mesh.png")
	imgcat.CatFile("/tmp/mesh.png", os.Stdout)
}
