package advanced

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/delaunay/dbg"
)

// Padding around the point set so hull edges don't hug the image border
const dbgDrawPadding = 20

// Render draws the triangulation into a fresh graphics context: filled
// triangles with stroked edges, the hull outlined on top, and the input
// points as dots. The caller owns the context and can save or composite it.
func (t *Triangulation) Render(points []Point, scale float64) *gg.Context {
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

	for i := 0; i < len(t.Triangles); i += 3 {
		a := points[t.Triangles[i]]
		b := points[t.Triangles[i+1]]
		cp := points[t.Triangles[i+2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cp.X, cp.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetLineWidth(1 / scale)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Hull on top
	first := points[t.Hull[0]]
	c.MoveTo(first.X, first.Y)
	for _, i := range t.Hull[1:] {
		c.LineTo(points[i].X, points[i].Y)
	}
	c.ClosePath()
	c.SetRGB(1, 1, 0)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	c.SetRGB(1, 0, 0)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	return c
}

// Helper to draw and print the triangulation in the terminal (iTerm only) for
// debugging. Triangles get readable labels so they can be matched up with
// String output.
func (t *Triangulation) dbgDraw(points []Point, scale float64) {
	c := t.Render(points, scale)
	c.SetRGB(1, 1, 1)
	for i := 0; i < len(t.Triangles); i += 3 {
		a := points[t.Triangles[i]]
		b := points[t.Triangles[i+1]]
		cp := points[t.Triangles[i+2]]
		centerX := (a.X + b.X + cp.X) / 3
		centerY := (a.Y + b.Y + cp.Y) / 3
		// We have to go back to identity to draw the text, so get the
		// point in native coordinates
		centerX, centerY = c.TransformPoint(centerX, centerY)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(i/3), centerX, centerY, 0.5, 0.5)
		c.Pop()
	}

	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}

// Debug dump of the triangulation. Interior triangles are green; triangles
// with at least one boundary edge are cyan.
func (t *Triangulation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Triangulation { %d triangles, %d hull points }\n", t.Len(), len(t.Hull))
	for i := 0; i < len(t.Triangles); i += 3 {
		name := dbg.Name(i / 3)
		onHull := t.Halfedges[i] == Empty || t.Halfedges[i+1] == Empty || t.Halfedges[i+2] == Empty
		if onHull {
			name = aurora.Cyan(name).String()
		} else {
			name = aurora.Green(name).String()
		}
		fmt.Fprintf(&b, "  %s (%d, %d, %d)\n", name, t.Triangles[i], t.Triangles[i+1], t.Triangles[i+2])
	}
	return b.String()
}
