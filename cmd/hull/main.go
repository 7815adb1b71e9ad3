// Command hull reads a set of points and builds their convex hull.
//
// Input is a file of whitespace separated "x y" lines, one point per line,
// with blank lines skipped. The hull is printed to stdout in
// counter-clockwise vertex order. With --out, the final state is rendered to
// a PNG: every point as an outlined circle, every CCW link as a blue arrow
// and every CW link as a red arrow. With --step, a numbered frame is rendered
// after every merge, so the construction can be replayed frame by frame.
package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/miodrag4/convexhull"
	"github.com/miodrag4/convexhull/hull"
)

var (
	pointsFile = kingpin.Arg("points", "File of whitespace separated \"x y\" lines.").Required().String()
	outFile    = kingpin.Flag("out", "Render the final state to this PNG.").Short('o').String()
	stepDir    = kingpin.Flag("step", "Render a numbered PNG frame into this directory after every merge.").String()
	imageSize  = kingpin.Flag("size", "Rendered image width in pixels.").Default("800").Int()
	inspect    = kingpin.Flag("inspect", "Dump the link state and cat a debug image to the terminal.").Bool()
)

func main() {
	kingpin.Parse()

	points, err := readPoints(*pointsFile)
	if err != nil {
		log.Fatalf("reading %s: %v", *pointsFile, err)
	}

	var observe convexhull.Observer
	if *stepDir != "" {
		if err := os.MkdirAll(*stepDir, 0o755); err != nil {
			log.Fatalf("creating %s: %v", *stepDir, err)
		}
		frame := 0
		observe = func(all []*convexhull.Point) {
			name := filepath.Join(*stepDir, fmt.Sprintf("step-%03d.png", frame))
			frame++
			if err := render(all, name); err != nil {
				log.Fatalf("rendering %s: %v", name, err)
			}
		}
	}

	if err := convexhull.BuildHullObserved(points, observe); err != nil {
		log.Fatalf("building hull: %v", err)
	}

	if *inspect {
		hull.DbgDump(points)
		hull.DbgDraw(points, 4)
	}

	vertices, err := convexhull.HullVertices(points)
	if err != nil {
		log.Fatalf("walking hull: %v", err)
	}
	fmt.Printf("%d of %d points on the hull:\n", len(vertices), len(points))
	for _, p := range vertices {
		fmt.Println(p)
	}

	if *outFile != "" {
		if err := render(points, *outFile); err != nil {
			log.Fatalf("rendering %s: %v", *outFile, err)
		}
	}
}

func readPoints(path string) ([]*convexhull.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var points []*convexhull.Point
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected \"x y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x value %q", lineNo, parts[0])
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y value %q", lineNo, parts[1])
		}
		points = append(points, &convexhull.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// render draws every point as an outlined circle with arrows along its hull
// links, framed with a 10% margin around the bounding box.
func render(points []*convexhull.Point, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	left, right := minX-0.1*spanX, maxX+0.1*spanX
	bottom, top := minY-0.1*spanY, maxY+0.1*spanY
	scale := float64(*imageSize) / (right - left)
	height := int(scale * (top - bottom))

	c := gg.NewContext(*imageSize, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Flip the context so the origin is at the bottom left, then map the
	// world window onto the image.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Scale(scale, scale)
	c.Translate(-left, -bottom)

	// Point radius in proportion to the bounding box.
	r := 0.01 * math.Max(right-left, top-bottom)

	c.SetLineWidth(2)
	for _, p := range points {
		c.SetRGB(0, 0, 0)
		c.DrawCircle(p.X, p.Y, r)
		c.Stroke()

		if p.CCW != nil {
			c.SetRGB(0, 0, 1)
			drawArrow(c, p, p.CCW, r)
		}
		if p.CW != nil {
			c.SetRGB(1, 0, 0)
			drawArrow(c, p, p.CW, r)
		}
	}

	return c.SavePNG(path)
}

// drawArrow draws an arrow from a to b, offset a bit to the right of the
// direction of travel so the two arrows of a hull edge don't overlap.
func drawArrow(c *gg.Context, a, b *convexhull.Point, r float64) {
	d := math.Hypot(b.X-a.X, b.Y-a.Y)
	if d == 0 {
		return
	}

	vx := (b.X - a.X) / d // unit direction a -> b
	vy := (b.Y - a.Y) / d
	px := -vy // unit direction perpendicular to (vx, vy)
	py := vx

	tailX := a.X + 1.5*r*vx - 0.4*r*px
	tailY := a.Y + 1.5*r*vy - 0.4*r*py
	headX := b.X - 1.5*r*vx - 0.4*r*px
	headY := b.Y - 1.5*r*vy - 0.4*r*py

	c.DrawLine(tailX, tailY, headX, headY)
	c.Stroke()

	c.MoveTo(headX, headY)
	c.LineTo(headX-2*r*vx+0.5*r*px, headY-2*r*vy+0.5*r*py)
	c.LineTo(headX-2*r*vx-0.5*r*px, headY-2*r*vy-0.5*r*py)
	c.ClosePath()
	c.Fill()
}
