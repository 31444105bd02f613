// SPDX-License-Identifier: EPL-2.0

package resample

import "github.com/ik5/audacq/utils"

// filterAlpha is the one-pole low-pass coefficient used when downsampling.
const filterAlpha = 0.5

// cubic interpolates with a Catmull-Rom spline. Edge frames are
// duplicated where the spline needs a neighbor outside the input.
func cubic(in, out []float32, from, to int) {
	n := len(in)
	src := in
	if from > to {
		src = lowPass(in, filterAlpha)
	}

	at := func(i int) float32 {
		if i < 0 {
			return src[0]
		}
		if i >= n {
			return src[n-1]
		}
		return src[i]
	}

	for j := range out {
		// position j*from/to split into integer frame and fraction
		num := int64(j) * int64(from)
		idx := int(num / int64(to))
		alpha := float32(num%int64(to)) / float32(to)

		out[j] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), alpha)
	}
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with the
// first sample to avoid a warm-up transient.
func lowPass(in []float32, alpha float32) []float32 {
	out := make([]float32, len(in))
	if len(in) == 0 {
		return out
	}

	state := in[0]
	for i, x := range in {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
