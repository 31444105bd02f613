// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"math"

	"github.com/ik5/audacq/utils"
)

// LanczosOrder is the number of lobes on each side of the kernel.
const LanczosOrder = 5

// lanczos convolves the input with a Lanczos kernel centered on each output
// position. When downsampling the kernel is stretched by from/to so that it
// also acts as the anti-alias filter.
func lanczos(in, out []float32, from, to int) {
	n := len(in)
	scale := 1.0
	if from > to {
		scale = float64(to) / float64(from)
	}
	support := float64(LanczosOrder) / scale

	for j := range out {
		x := float64(int64(j)*int64(from)) / float64(to)
		lo := max(int(math.Floor(x-support))+1, 0)
		hi := min(int(math.Floor(x+support)), n-1)

		var sum float64
		for i := lo; i <= hi; i++ {
			sum += float64(in[i]) * utils.LanczosKernel((x-float64(i))*scale, LanczosOrder)
		}

		out[j] = float32(sum * scale)
	}
}
