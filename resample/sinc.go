// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"math"
	"sync"

	"github.com/ik5/audacq/utils"
)

// Kaiser windowed sinc table parameters.
const (
	sincZeroCrossings = 64
	sincPrecision     = 512 // table entries per zero crossing
	sincRolloff       = 0.9475937167399596
	sincKaiserBeta    = 14.769656459379492
)

var (
	sincOnce  sync.Once
	sincWin   []float64
	sincDelta []float64
)

// sincTable returns the right half of the windowed sinc filter and the
// differences between neighboring entries, used for linear interpolation
// inside the table. Built once and only read afterwards.
func sincTable() ([]float64, []float64) {
	sincOnce.Do(func() {
		n := sincZeroCrossings * sincPrecision
		win := make([]float64, n+1)
		i0Beta := utils.BesselI0(sincKaiserBeta)

		for j := range win {
			pos := float64(j) / float64(n)
			x := pos * sincZeroCrossings
			taper := utils.BesselI0(sincKaiserBeta*math.Sqrt(1-pos*pos)) / i0Beta
			win[j] = taper * sincRolloff * utils.Sinc(sincRolloff*x)
		}

		delta := make([]float64, n+1)
		for j := 0; j < n; j++ {
			delta[j] = win[j+1] - win[j]
		}

		sincWin, sincDelta = win, delta
	})

	return sincWin, sincDelta
}

// sinc is band-limited interpolation over the filter table. Every output
// sample sums the left wing (current frame and earlier) and the right wing
// (later frames) of the filter.
func sinc(in, out []float32, from, to int) {
	win, delta := sincTable()
	nwin := len(win)
	n := len(in)

	ratio := float64(to) / float64(from)
	scale := min(1.0, ratio)
	gain := scale
	indexStep := int(scale * sincPrecision)

	for t := range out {
		num := int64(t) * int64(from)
		frame := int(num / int64(to))
		frac := scale * float64(num%int64(to)) / float64(to)

		var sum float64

		indexFrac := frac * sincPrecision
		offset := int(indexFrac)
		eta := indexFrac - float64(offset)
		iMax := min(frame+1, (nwin-offset)/indexStep)
		for i := 0; i < iMax; i++ {
			k := offset + i*indexStep
			if frame-i < n {
				sum += (win[k] + eta*delta[k]) * float64(in[frame-i])
			}
		}

		frac = scale - frac
		indexFrac = frac * sincPrecision
		offset = int(indexFrac)
		eta = indexFrac - float64(offset)
		kMax := min(n-frame-1, (nwin-offset)/indexStep)
		for k := 0; k < kMax; k++ {
			w := offset + k*indexStep
			sum += (win[w] + eta*delta[w]) * float64(in[frame+k+1])
		}

		out[t] = float32(sum * gain)
	}
}
