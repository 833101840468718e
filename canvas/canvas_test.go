package canvas

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyre-lang/gyre/geometry"
)

func TestCanvasAccumulation(t *testing.T) {
	c := New()
	require.Equal(t, DefaultResolution, c.Resolution)
	require.Equal(t, DefaultScale, c.Scale)

	var path Path
	path.PushBack(geometry.NewPol(1, 0))
	path.PushBack(geometry.NewPol(2, 0))
	c.AddPath(path)
	c.AddMark(Circle{Center: geometry.NewPol(1, 1), Radius: 0.5, IsFilled: true})

	require.Len(t, c.Paths, 1)
	require.Len(t, c.Marks, 1)

	c.Clear()
	require.Empty(t, c.Paths)
	require.Empty(t, c.Marks)
}

func TestPathForCircleAtOrigin(t *testing.T) {
	path := PathForCircle(geometry.NewPol(0, 0), 2.0, 100)
	require.True(t, path.IsClosed)
	require.GreaterOrEqual(t, path.Len(), 100)
	for _, p := range path.Points {
		require.InDelta(t, 2.0, p.R, 1e-9)
	}
}

func TestPathForCircleOffCenter(t *testing.T) {
	center := geometry.NewPol(1.5, 0.75)
	radius := 1.0
	path := PathForCircle(center, radius, 50)
	require.True(t, path.IsClosed)
	require.Greater(t, path.Len(), 50)

	// Every sampled point must sit (approximately) at the circle's radius
	// from the center.
	for _, p := range path.Points {
		require.InDelta(t, radius, center.DistanceTo(p), 0.05, "point %v", p)
	}
}

func TestPathForLineEndpointsAndLength(t *testing.T) {
	from := geometry.NewPol(1.0, 0.5)
	to := geometry.NewPol(2.0, 2.5)
	path := PathForLine(from, to, 100)
	require.False(t, path.IsClosed)
	require.GreaterOrEqual(t, path.Len(), 100)

	first := path.Points[0]
	require.InDelta(t, from.R, first.R, 1e-6)
	last := path.Points[path.Len()-1]
	require.InDelta(t, to.R, last.R, 1e-9)
	require.InDelta(t, to.Phi, last.Phi, 1e-9)

	// Consecutive points advance monotonically along the segment.
	total := 0.0
	for i := 1; i < path.Len(); i++ {
		total += path.Points[i-1].DistanceTo(path.Points[i])
	}
	require.InDelta(t, from.DistanceTo(to), total, 1e-3)
}

func TestPathForLineDegenerate(t *testing.T) {
	p := geometry.NewPol(1.0, 1.0)
	path := PathForLine(p, p, 100)
	require.Equal(t, 1, path.Len())
}

func TestSaveToFileFormats(t *testing.T) {
	dir := t.TempDir()
	c := New()
	var path Path
	path.PushBack(geometry.NewPol(0, 0))
	path.PushBack(geometry.NewPol(1, math.Pi/2))
	c.AddPath(path)
	c.AddMark(Circle{Center: geometry.NewPol(1, 0), Radius: 1, IsFilled: true})

	ipeFile := filepath.Join(dir, "figure.ipe")
	require.NoError(t, c.SaveToFile(ipeFile))
	ipe, err := os.ReadFile(ipeFile)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(ipe), "<?xml version=\"1.0\"?>"))
	require.Contains(t, string(ipe), "<ipe version=")
	require.Contains(t, string(ipe), " m\n")
	require.Contains(t, string(ipe), " l\n")
	require.Contains(t, string(ipe), " e\n")
	require.Contains(t, string(ipe), "</ipe>")

	svgFile := filepath.Join(dir, "figure.svg")
	require.NoError(t, c.SaveToFile(svgFile))
	svg, err := os.ReadFile(svgFile)
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg xmlns=")
	require.Contains(t, string(svg), "<path fill=\"none\" stroke=\"black\"")
	require.Contains(t, string(svg), "<circle ")
}

func TestIpeClosedPathMarker(t *testing.T) {
	c := New()
	c.AddPath(PathForCircle(geometry.NewPol(0, 0), 1, 10))
	require.Contains(t, c.IpeRepresentation(), "h\n</path>")
}
