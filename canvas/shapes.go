package canvas

import (
	"math"

	"github.com/gyre-lang/gyre/geometry"
)

// PathForCircle samples the hyperbolic circle with the given center and
// radius into a closed path. The resolution controls how many points are
// used; more points near the radial minimum where the curvature is highest.
func PathForCircle(center geometry.Pol, radius, resolution float64) Path {
	path := Path{IsClosed: true}

	// A circle centered at the origin has constant radius, so it can be
	// sampled angle-wise directly.
	if center.R == 0.0 {
		angleStep := (2.0 * math.Pi) / resolution
		for angle := 0.0; angle < 2.0*math.Pi; angle += angleStep {
			path.PushBack(geometry.NewPol(radius, angle))
		}
		return path
	}

	// Off-center circles are swept radially, pretending the center lies on
	// the ray at angle 0. For each radius between the extremes the triangle
	// angle gives the angular coordinate of the circle point.
	rMin := math.Max(radius-center.R, center.R-radius)
	rMax := center.R + radius

	stepSize := (rMax - rMin) / resolution

	// Near the radial minimum the angle changes fastest, so finer steps are
	// needed there for a smooth curve.
	additionalDetailThreshold := 5.0 * stepSize
	additionalDetailPoints := resolution / 5.0
	additionalStepSize := stepSize / additionalDetailPoints

	angle := 0.0
	r := rMax
	for r >= rMin {
		// A failed angle computation is not a problem here; the previous
		// angle is simply reused.
		if newAngle, err := geometry.Theta(center.R, r, radius); err == nil {
			angle = newAngle
		}
		path.PushBack(geometry.NewPol(r, angle))

		if r >= rMin && r-rMin < additionalDetailThreshold {
			for additionalR := r - additionalStepSize; additionalR > r-stepSize; additionalR -= additionalStepSize {
				if newAngle, err := geometry.Theta(center.R, additionalR, radius); err == nil {
					angle = newAngle
				}
				if additionalR >= rMin {
					path.PushBack(geometry.NewPol(additionalR, angle))
				}
			}
		}

		r -= stepSize
	}

	// The innermost point lies on the x-axis: at angle π when the circle
	// contains the origin, at angle 0 otherwise.
	innerPointAngle := math.Pi
	if center.R > radius {
		innerPointAngle = 0.0
	}
	path.PushBack(geometry.NewPol(rMin, innerPointAngle))

	// Mirror the swept half onto the other side of the x-axis, walking
	// backwards so the path stays connected. The first and last points lie
	// on the axis and are not duplicated.
	for i := path.Len() - 2; i > 0; i-- {
		point := path.Points[i]
		path.PushBack(geometry.NewPol(point.R, 2.0*math.Pi-point.Phi))
	}

	// Finally rotate everything to the true angular coordinate of the center.
	for i, p := range path.Points {
		path.Points[i] = p.RotateBy(center.Phi)
	}
	return path
}

// PathForLine samples the geodesic segment between the two points into an
// open path with the given resolution.
func PathForLine(from, to geometry.Pol, resolution float64) Path {
	path := Path{IsClosed: false}

	length := from.DistanceTo(to)
	stepSize := length / resolution
	if !(stepSize > 0.0) {
		// Degenerate segment; a single point is all there is to draw.
		path.PushBack(from)
		return path
	}

	// Move the segment onto the ray at angle 0 with 'from' at the origin,
	// sample it there, and map each sample back through the inverse
	// transforms.
	rotationAngle := -from.Phi
	rotatedTo := to.RotateBy(rotationAngle)

	translationDistance := -from.R
	translatedTo := rotatedTo.TranslateHorizontallyBy(translationDistance)

	secondRotationAngle := -translatedTo.Phi

	for r := 0.0; r < translatedTo.R; r += stepSize {
		point := geometry.NewPol(r, 0.0).
			RotateBy(-secondRotationAngle).
			TranslateHorizontallyBy(-translationDistance).
			RotateBy(-rotationAngle)
		path.PushBack(point)
	}
	path.PushBack(to)
	return path
}
