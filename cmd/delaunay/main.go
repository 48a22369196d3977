package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay/mesh"
)

// Demo of incremental triangulation. Input on stdin should be newline
// separated points in the form "x y" or "x y z". The triangulation is
// rendered to a PNG.

var (
	minX    = kingpin.Flag("min-x", "Left edge of the bounding box.").Default("0").Float64()
	maxX    = kingpin.Flag("max-x", "Right edge of the bounding box.").Default("100").Float64()
	minY    = kingpin.Flag("min-y", "Bottom edge of the bounding box.").Default("0").Float64()
	maxY    = kingpin.Flag("max-y", "Top edge of the bounding box.").Default("100").Float64()
	scale   = kingpin.Flag("scale", "Pixels per input unit.").Default("8").Float64()
	output  = kingpin.Flag("output", "Output PNG path.").Short('o').Default("mesh.png").String()
	circles = kingpin.Flag("circumcircles", "Also draw each cell's circumcircle.").Bool()
)

func main() {
	kingpin.Parse()

	points, err := readPoints(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	fmt.Printf("Read %d points\n", len(points))

	m, err := mesh.New(*minX, *maxX, *minY, *maxY)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	if err := m.Insert(points...); err != nil {
		// Skipped points are anomalies, not fatal; the rest of the mesh is
		// still valid and worth rendering.
		fmt.Fprintln(os.Stderr, aurora.Yellow(err))
	}

	cells := m.Collect()
	fmt.Printf("Triangulated into %s cells\n", aurora.Green(strconv.Itoa(len(cells))))

	if err := draw(cells, *output); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	fmt.Println("Wrote", *output)
}

func readPoints(in *os.File) ([]*mesh.Point, error) {
	var points []*mesh.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (*mesh.Point, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("expected \"x y\" or \"x y z\", got %q", line)
	}
	var coords [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %v", part, err)
		}
		coords[i] = value
	}
	return &mesh.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func draw(cells []*mesh.Triangle, path string) error {
	const padding = 20

	width := int(*scale*(*maxX-*minX)) + padding*2
	height := int(*scale*(*maxY-*minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(*scale, *scale)
	c.Translate(-*minX, -*minY)

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

	if *circles {
		c.SetRGB(1, 0.5, 0)
		for _, cell := range cells {
			center := cell.Circumcenter()
			c.DrawCircle(center.X, center.Y, math.Sqrt(cell.CircumradiusSq()))
			c.Stroke()
		}
	}

	return c.SavePNG(path)
}
