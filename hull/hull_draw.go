package hull

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/miodrag4/convexhull/dbg"
)

// This file is for debugging purposes only.

const dbgDrawPadding = 20

// DbgName colors the point's readable name by its link state: green for
// points on a hull, cyan for unlinked points, red for half-linked points,
// which should never survive a completed build step.
func (p *Point) DbgName() string {
	name := dbg.Name(p)
	switch {
	case p.OnHull():
		name = aurora.Green(name).String()
	case p.CCW == nil && p.CW == nil:
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Red(name).String()
	}
	return name
}

func (p *Point) DbgString() string {
	return fmt.Sprintf("%s %v <CCW: %s, CW: %s>", p.DbgName(), p, dbg.Name(p.CCW), dbg.Name(p.CW))
}

// DbgDump prints one line per point with its name, coordinates and links.
func DbgDump(points []*Point) {
	for _, p := range points {
		fmt.Println(p.DbgString())
	}
}

// DbgDraw renders the collection at the given scale with a dot per point and
// a line along each CCW link, then cats the image to the terminal. Pair it
// with DbgDump to match dots to names.
func DbgDraw(points []*Point, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
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

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for _, p := range points {
		if p.CCW == nil {
			continue
		}
		c.DrawLine(p.X, p.Y, p.CCW.X, p.CCW.Y)
		c.Stroke()
	}

	for _, p := range points {
		if p.OnHull() {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0.5, 0)
		}
		c.DrawPoint(p.X, p.Y, 2)
		c.Fill()
	}

	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
