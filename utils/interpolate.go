// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples at x, the fractional position between y1 (x=0) and y2 (x=1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// Sinc is the normalized sinc function sin(pi*x)/(pi*x).
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x

	return math.Sin(px) / px
}

// LanczosKernel evaluates the Lanczos window of order a at x.
func LanczosKernel(x float64, a int) float64 {
	fa := float64(a)
	if x == 0 {
		return 1
	}
	if x <= -fa || x >= fa {
		return 0
	}

	return Sinc(x) * Sinc(x/fa)
}

// BesselI0 is the zeroth order modified Bessel function of the first kind,
// evaluated by its power series.
func BesselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	half := x / 2

	for k := 1; k < 500; k++ {
		term *= (half / float64(k)) * (half / float64(k))
		sum += term
		if term < sum*1e-17 {
			break
		}
	}

	return sum
}
