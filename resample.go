// SPDX-License-Identifier: EPL-2.0

package audacq

import (
	"github.com/ik5/audacq/resample"
	"github.com/ik5/audacq/utils"
)

// ResampleToMono16 is a convenience wrapper that acquires data as mono at
// targetRate and returns it as 16-bit PCM together with the output rate.
//
// Sources that are already mono are only resampled.
//
//	pcm16, rate, err := audacq.ResampleToMono16(data, 8000, resample.ModeDefault)
func ResampleToMono16(data []byte, targetRate int, mode resample.Mode) ([]int16, int, error) {
	opts, err := NewOptions(WithMono(), WithFrameRate(targetRate), WithResampleMode(mode))
	if err != nil {
		return nil, 0, err
	}

	wf, err := Acquire(data, opts)
	if err != nil {
		return nil, 0, err
	}

	pcm16 := make([]int16, len(wf.samples))
	for i, x := range wf.samples {
		pcm16[i] = utils.Float32ToInt16(x)
	}

	return pcm16, wf.frameRate, nil
}
