package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
)

// Demo of Delaunay triangulation. Reads a point set, either from an SVG file
// (the vertices of its first polygon) or as newline separated "x y" pairs,
// triangulates it, and prints a summary. Optionally renders the result to a
// PNG and previews it in the terminal (iTerm only).
var (
	output = kingpin.Flag("output", "Write a PNG rendering of the triangulation to this path.").Short('o').String()
	scale  = kingpin.Flag("scale", "Pixels per input unit in the rendering.").Default("4").Float64()
	cat    = kingpin.Flag("cat", "Preview the rendering in the terminal (iTerm only).").Bool()
	input  = kingpin.Arg("input", "Input file (.svg or point list). Reads points from stdin if omitted.").String()
)

func main() {
	kingpin.Parse()

	points, err := readPoints(*input)
	kingpin.FatalIfError(err, "could not read points")

	tri, err := delaunay.Triangulate(points)
	kingpin.FatalIfError(err, "could not triangulate")

	fmt.Printf("%s points, %s triangles, %s hull points\n",
		aurora.Cyan(len(points)),
		aurora.Green(tri.Len()),
		aurora.Yellow(len(tri.Hull)),
	)

	if *output == "" && !*cat {
		return
	}

	path := *output
	if path == "" {
		path = "/tmp/delaunay.png"
	}
	c := tri.Render(points, *scale)
	kingpin.FatalIfError(c.SavePNG(path), "could not save %q", path)
	if *cat {
		imgcat.CatFile(path, os.Stdout)
	}
}

func readPoints(path string) ([]delaunay.Point, error) {
	if path == "" {
		return parsePointLines(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".svg") {
		return parseSVGPoints(f)
	}
	return parsePointLines(f)
}

// Parses newline separated points in the form "x y". Blank lines are skipped.
func parsePointLines(in io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, delaunay.Point{X: x, Y: y})
	}
	return points, scanner.Err()
}

// Extracts the vertices of the first polygon in an SVG document as a point
// set. Everything else in the document is ignored.
func parseSVGPoints(in io.Reader) ([]delaunay.Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, err
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, fmt.Errorf("no polygons found")
	}

	var points []delaunay.Point
	for _, pair := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %v", coords[1], err)
		}
		points = append(points, delaunay.Point{X: x, Y: y})
	}
	return points, nil
}
