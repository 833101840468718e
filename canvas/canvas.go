// Package canvas accumulates the drawable geometry produced by a script and
// renders it to a vector file. Geometry stays in hyperbolic polar coordinates
// until export, when it is projected to Euclidean coordinates.
package canvas

import (
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gyre-lang/gyre/geometry"
)

// DefaultResolution is the number of steps used to sample paths unless a
// script overrides it with set_resolution.
const DefaultResolution = 100.0

// DefaultScale maps one unit of hyperbolic length to this many output units.
const DefaultScale = 15.0

// Euc is a Euclidean coordinate, used when drawing the canvas.
type Euc struct {
	X float64
	Y float64
}

// EucFromPol projects a polar point to Euclidean coordinates, applying the
// given scale factor.
func EucFromPol(p geometry.Pol, scale float64) Euc {
	return Euc{
		X: scale * p.R * math.Cos(p.Phi),
		Y: scale * p.R * math.Sin(p.Phi),
	}
}

// Path is an ordered sequence of polar points, either open or closed. Paths
// are built by PushBack and become immutable once handed to the canvas.
type Path struct {
	Points   []geometry.Pol
	IsClosed bool
}

// PushBack appends a point to the path.
func (p *Path) PushBack(point geometry.Pol) {
	p.Points = append(p.Points, point)
}

// Len returns the number of points on the path.
func (p *Path) Len() int {
	return len(p.Points)
}

// Empty returns true if the path has no points.
func (p *Path) Empty() bool {
	return len(p.Points) == 0
}

// Circle marks a point on the plane. In contrast to a bare coordinate, the
// mark has a display radius.
type Circle struct {
	Center   geometry.Pol
	Radius   float64
	IsFilled bool
}

// Canvas holds all geometric objects accumulated by a script run.
type Canvas struct {
	// Paths that are currently on the canvas.
	Paths []Path

	// Marks that are currently on the canvas.
	Marks []Circle

	// Resolution controls the number of points used to draw objects. The
	// higher the resolution, the more points are used.
	Resolution float64

	// Scale maps hyperbolic length to output units so that a length of 1.0
	// is not rendered as a single pixel.
	Scale float64

	logger zerolog.Logger
}

// New creates an empty canvas with default resolution and scale.
func New() *Canvas {
	return &Canvas{
		Resolution: DefaultResolution,
		Scale:      DefaultScale,
		logger:     zerolog.Nop(),
	}
}

// SetLogger attaches a logger used for debug traces.
func (c *Canvas) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// AddPath adds a path to the canvas. The canvas owns the path afterwards.
func (c *Canvas) AddPath(path Path) {
	c.Paths = append(c.Paths, path)
}

// AddMark adds a mark to the canvas.
func (c *Canvas) AddMark(mark Circle) {
	c.Marks = append(c.Marks, mark)
}

// Clear removes all marks and paths from the canvas.
func (c *Canvas) Clear() {
	c.Paths = nil
	c.Marks = nil
}

// SaveToFile writes the current canvas to the named file. Files ending in
// ".ipe" use the Ipe XML format; everything else is written as SVG.
func (c *Canvas) SaveToFile(fileName string) error {
	var content string
	if strings.HasSuffix(fileName, ".ipe") {
		content = c.IpeRepresentation()
	} else {
		content = c.SVGRepresentation()
	}
	c.logger.Debug().
		Str("file", fileName).
		Int("paths", len(c.Paths)).
		Int("marks", len(c.Marks)).
		Msg("saving canvas")
	return os.WriteFile(fileName, []byte(content), 0o644)
}
