package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestRotateRoundTrip(t *testing.T) {
	points := []Pol{
		NewPol(0.5, 0.0),
		NewPol(1.0, 1.0),
		NewPol(2.5, 4.0),
		NewPol(3.0, 6.0),
	}
	angles := []float64{0.1, 1.0, math.Pi, 2.5, -0.75, 13.0}
	for _, p := range points {
		for _, a := range angles {
			q := p.RotateBy(a).RotateBy(-a)
			require.InDelta(t, p.R, q.R, tolerance)
			require.InDelta(t, math.Mod(p.Phi+2*math.Pi, 2*math.Pi), q.Phi, 1e-9,
				"point %v angle %v", p, a)
		}
	}
}

func TestRotateNormalizesAngle(t *testing.T) {
	p := NewPol(1.0, 0.5).RotateBy(4 * math.Pi)
	require.InDelta(t, 0.5, p.Phi, tolerance)

	q := NewPol(1.0, 0.5).RotateBy(-1.0)
	require.True(t, q.Phi >= 0.0 && q.Phi < 2*math.Pi)
	require.InDelta(t, 0.5-1.0+2*math.Pi, q.Phi, tolerance)
}

func TestTranslateRoundTrip(t *testing.T) {
	points := []Pol{
		NewPol(1.0, 1.0),
		NewPol(0.5, 2.5),
		NewPol(2.0, 4.5), // below the x-axis
		NewPol(1.5, 0.0), // on the positive x-axis
		NewPol(1.5, math.Pi),
	}
	distances := []float64{0.25, 1.0, -0.5, 3.0, -2.0}
	for _, p := range points {
		for _, d := range distances {
			q := p.TranslateHorizontallyBy(d).TranslateHorizontallyBy(-d)
			require.InDelta(t, p.R, q.R, 1e-6, "point %v distance %v", p, d)
			require.InDelta(t, math.Cos(p.Phi), math.Cos(q.Phi), 1e-6, "point %v distance %v", p, d)
			require.InDelta(t, math.Sin(p.Phi), math.Sin(q.Phi), 1e-6, "point %v distance %v", p, d)
		}
	}
}

func TestTranslateZeroDistance(t *testing.T) {
	p := NewPol(1.25, 2.0)
	require.Equal(t, p, p.TranslateHorizontallyBy(0.0))
}

func TestTranslateAlongAxis(t *testing.T) {
	// Sliding past the origin flips the point to the opposite ray.
	p := NewPol(1.0, 0.0).TranslateHorizontallyBy(-2.0)
	require.InDelta(t, 1.0, p.R, tolerance)
	require.InDelta(t, math.Pi, p.Phi, tolerance)

	q := NewPol(1.0, math.Pi).TranslateHorizontallyBy(2.0)
	require.InDelta(t, 1.0, q.R, tolerance)
	require.InDelta(t, 0.0, q.Phi, tolerance)
}

func TestDistanceSymmetricAndZero(t *testing.T) {
	p := NewPol(1.0, 0.5)
	q := NewPol(2.0, 3.0)
	require.InDelta(t, p.DistanceTo(q), q.DistanceTo(p), tolerance)
	require.Greater(t, p.DistanceTo(q), 0.0)
	require.Equal(t, 0.0, p.DistanceTo(p))
}

func TestDistanceOnAxis(t *testing.T) {
	// Two points on the same ray are separated by the difference of radii.
	p := NewPol(1.0, 0.0)
	q := NewPol(3.0, 0.0)
	require.InDelta(t, 2.0, p.DistanceTo(q), 1e-9)

	// Opposite rays add up.
	r := NewPol(1.0, math.Pi)
	require.InDelta(t, 2.0, p.DistanceTo(r), 1e-9)
}

func TestTheta(t *testing.T) {
	// Equilateral configuration: the angle must be positive and below π/2
	// (hyperbolic triangles are thinner than Euclidean ones).
	angle, err := Theta(1.0, 1.0, 1.0)
	require.NoError(t, err)
	require.Greater(t, angle, 0.0)
	require.Less(t, angle, math.Pi/2)

	// Degenerate triangle: r1 + r2 == R means the angle opens fully.
	angle, err = Theta(1.0, 1.0, 2.0)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, angle, 1e-9)
}

func TestThetaInfeasible(t *testing.T) {
	// Zero-length sides make the law of cosines undefined.
	_, err := Theta(0.0, 1.0, 1.0)
	require.ErrorIs(t, err, ErrNumericallyInfeasible)

	// Triangle inequality violated: no valid angle exists.
	_, err = Theta(0.5, 0.5, 5.0)
	require.ErrorIs(t, err, ErrNumericallyInfeasible)
}
