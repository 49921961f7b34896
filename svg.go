package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jbeda/geom"
)

// Styles for the rendered layers
const (
	svgBaseStyle     = "stroke-linecap: round; fill: none"
	svgBoundsStyle   = "stroke: black; stroke-width: 0.04"
	svgObstacleStyle = "stroke: red; stroke-width: 0.04; fill: rgba(255,0,0,0.15)"
	svgSampleStyle   = "fill: green"
	svgEdgeStyle     = "stroke: green; stroke-width: 0.01"
	svgPathStyle     = "stroke: blue; stroke-width: 0.03"
	svgShortcutStyle = "stroke: black; stroke-width: 0.05"
	svgSampleRadius  = 0.02
)

// SVG serialization helper. The first write error sticks and stops further output.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

// Err returns the first write error, if any
func (svg *SVG) Err() error {
	return svg.err
}

// extraparams turns "k=v" strings into attributes and anything else into a style
func extraparams(s []string) string {
	ep := ""
	for _, param := range s {
		if strings.Contains(param, "=") {
			ep += param + " "
		} else if len(param) > 0 {
			ep += fmt.Sprintf("style='%s' ", param)
		}
	}
	return ep
}

// Start opens the document. The content group flips the y axis so the plane's origin
// is bottom left.
func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
<g transform='translate(0,%f) scale(1,-1)'>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(s),
		viewBox.Min.Y+viewBox.Max.Y)
}

func (svg *SVG) End() {
	svg.printf("</g>\n</svg>\n")
}

func (svg *SVG) Line(p1 geom.Coord, p2 geom.Coord, s ...string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, extraparams(s))
}

func (svg *SVG) Circle(c geom.Coord, r float64, s ...string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, extraparams(s))
}

func (svg *SVG) Polygon(points []geom.Coord, s ...string) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%f,%f", p.X, p.Y)
	}
	svg.printf("<polygon points='%s' %s/>\n", strings.Join(coords, " "), extraparams(s))
}

func coord(p Point) geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

type svgLine struct {
	A, B geom.Coord
}

// SVGObserver records a planning run and renders it as an SVG document
type SVGObserver struct {
	bounds    geom.Rect
	plane     geom.Rect
	obstacles [][]geom.Coord
	samples   []geom.Coord
	edges     []svgLine
	path      []svgLine
	shortcuts []svgLine
}

// NewSVGObserver creates an observer whose view covers the environment's plane
func NewSVGObserver(env *Environment) *SVGObserver {
	plane := geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: env.Width, Y: env.Height}}
	return &SVGObserver{bounds: plane, plane: plane}
}

func (o *SVGObserver) include(c geom.Coord) {
	o.bounds.ExpandToContainCoord(c)
}

func (o *SVGObserver) ObstacleAdded(t Triangle) {
	poly := make([]geom.Coord, 0, 3)
	for _, v := range t.Vertices {
		c := coord(v)
		o.include(c)
		poly = append(poly, c)
	}
	o.obstacles = append(o.obstacles, poly)
}

func (o *SVGObserver) SampleAccepted(p Point) {
	o.samples = append(o.samples, coord(p))
}

func (o *SVGObserver) EdgeAdded(a, b Point) {
	o.include(coord(a))
	o.include(coord(b))
	o.edges = append(o.edges, svgLine{coord(a), coord(b)})
}

func (o *SVGObserver) PathSegment(a, b Point) {
	o.path = append(o.path, svgLine{coord(a), coord(b)})
}

func (o *SVGObserver) ShortcutApplied(a, b Point) {
	o.shortcuts = append(o.shortcuts, svgLine{coord(a), coord(b)})
}

// Render writes the recorded layers, bottom to top: plane, obstacles, roadmap, path, shortcuts
func (o *SVGObserver) Render(w io.Writer) error {
	svg := NewSVG(w)
	svg.Start(o.bounds, svgBaseStyle)

	svg.Polygon([]geom.Coord{
		o.plane.Min,
		{X: o.plane.Max.X, Y: o.plane.Min.Y},
		o.plane.Max,
		{X: o.plane.Min.X, Y: o.plane.Max.Y},
	}, svgBoundsStyle)
	for _, poly := range o.obstacles {
		svg.Polygon(poly, svgObstacleStyle)
	}
	for _, e := range o.edges {
		svg.Line(e.A, e.B, svgEdgeStyle)
	}
	for _, c := range o.samples {
		svg.Circle(c, svgSampleRadius, svgSampleStyle)
	}
	for _, e := range o.path {
		svg.Line(e.A, e.B, svgPathStyle)
	}
	for _, e := range o.shortcuts {
		svg.Line(e.A, e.B, svgShortcutStyle)
	}

	svg.End()
	return svg.Err()
}

// SaveSVG renders the observer to a file
func (o *SVGObserver) SaveSVG(filename string) error {
	log.Printf("💾 Saving SVG to %s...\n", filename)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := o.Render(f); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}
