// Package geometry implements the hyperbolic polar-coordinate math that all
// drawing operations are built on. Points live in the native (radius, angle)
// representation of the hyperbolic plane; distances and angles follow the
// hyperbolic law of cosines.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrNumericallyInfeasible is returned by Theta when rounding pushes the
// arccosine argument outside [-1, 1] and no angle can be derived.
var ErrNumericallyInfeasible = errors.New("geometry: triangle angle is numerically infeasible")

// Pol is a point in polar coordinates: a radius and an angle in radians.
type Pol struct {
	R   float64
	Phi float64
}

// NewPol creates a point with the given radial and angular coordinates.
func NewPol(r, phi float64) Pol {
	return Pol{R: r, Phi: phi}
}

func (p Pol) String() string {
	return fmt.Sprintf("Pol(%f, %f)", p.R, p.Phi)
}

// RotateBy rotates the point around the origin, normalizing the resulting
// angle into [0, 2π).
func (p Pol) RotateBy(angle float64) Pol {
	phi := math.Mod(p.Phi+angle, 2.0*math.Pi)
	for phi < 0.0 {
		phi += 2.0 * math.Pi
	}
	return Pol{R: p.R, Phi: phi}
}

// TranslateHorizontallyBy moves the point as if sliding along the ray at
// angle 0 by the given distance. Translating by -d exactly undoes a
// translation by d, up to floating-point error.
func (p Pol) TranslateHorizontallyBy(distance float64) Pol {
	if distance == 0.0 {
		return p
	}

	// Points on the x-axis just slide along it, possibly passing the origin.
	if p.Phi == 0.0 || p.Phi == math.Pi {
		if p.Phi == 0.0 {
			phi := 0.0
			if p.R+distance < 0.0 {
				phi = math.Pi
			}
			return Pol{R: math.Abs(p.R + distance), Phi: phi}
		}
		phi := math.Pi
		if p.R-distance < 0.0 {
			phi = 0.0
		}
		return Pol{R: math.Abs(p.R - distance), Phi: phi}
	}

	// The reference point is where the translation moves the origin to; its
	// distance to the point gives the new radial coordinate.
	reference := Pol{R: math.Abs(distance), Phi: 0.0}
	if distance > 0.0 {
		reference.Phi = math.Pi
	}

	// Mirror points below the x-axis onto the upper half plane first; the
	// translation is symmetric with respect to the axis.
	mirrored := p.Phi > math.Pi
	point := p
	if mirrored {
		point.Phi = 2.0*math.Pi - point.Phi
	}

	radial := point.DistanceTo(reference)

	numerator := math.Cosh(math.Abs(distance))*math.Cosh(radial) - math.Cosh(point.R)
	denominator := math.Sinh(math.Abs(distance)) * math.Sinh(radial)

	angular := 0.0
	if denominator != 0.0 {
		angular = math.Acos(clamp(numerator/denominator, -1.0, 1.0))
	}
	if distance < 0.0 {
		angular = math.Pi - angular
	}

	result := Pol{R: radial, Phi: angular}
	if mirrored {
		result.Phi = 2.0*math.Pi - result.Phi
	}
	return result
}

// DistanceTo returns the hyperbolic distance between the two points. It is
// symmetric and zero exactly when the coordinates coincide.
func (p Pol) DistanceTo(other Pol) float64 {
	deltaPhi := math.Pi - math.Abs(math.Pi-math.Abs(p.Phi-other.Phi))

	arg := math.Cosh(p.R)*math.Cosh(other.R) -
		math.Sinh(p.R)*math.Sinh(other.R)*math.Cos(deltaPhi)
	if arg < 1.0 {
		// Rounding can push the argument slightly below acosh's domain when
		// the points (nearly) coincide.
		return 0.0
	}
	return math.Acosh(arg)
}

// Theta returns the angle opposite the side of length R in a hyperbolic
// triangle whose other two sides have lengths r1 and r2. It returns
// ErrNumericallyInfeasible when the derived arccosine argument falls outside
// [-1, 1] after rounding.
func Theta(r1, r2, R float64) (float64, error) {
	denominator := math.Sinh(r1) * math.Sinh(r2)
	if denominator == 0.0 {
		return 0, ErrNumericallyInfeasible
	}
	ratio := (math.Cosh(r1)*math.Cosh(r2) - math.Cosh(R)) / denominator
	if ratio < -1.0 || ratio > 1.0 || math.IsNaN(ratio) {
		return 0, ErrNumericallyInfeasible
	}
	return math.Acos(ratio), nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
