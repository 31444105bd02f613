// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audacq/audio"
)

// MaxRatio bounds the conversion factor in either direction.
const MaxRatio = 256

// OutputFrames returns how many frames mode produces for n input frames converted from -> to.
//
// Cubic only emits positions inside the input span, floor((n-1)*to/from)+1.
// Lanczos and Sinc cover the whole input duration, ceil(n*to/from).
func OutputFrames(mode Mode, n, from, to int) int {
	if n <= 0 || from <= 0 || to <= 0 {
		return 0
	}
	if from == to {
		return n
	}

	num := int64(n) * int64(to)
	switch mode {
	case ModeLanczos, ModeSinc:
		return int((num + int64(from) - 1) / int64(from))
	default:
		return int((int64(n-1)*int64(to))/int64(from)) + 1
	}
}

// Validate checks that from -> to is a supported conversion.
func Validate(from, to int) error {
	if from <= 0 || to <= 0 {
		return fmt.Errorf("%w: cannot resample %d Hz to %d Hz", audio.ErrInvalidFrameRate, from, to)
	}
	if int64(from) > int64(to)*MaxRatio || int64(to) > int64(from)*MaxRatio {
		return fmt.Errorf("%w: ratio between %d Hz and %d Hz exceeds %d", audio.ErrInvalidFrameRate, from, to, MaxRatio)
	}

	return nil
}

// Resample converts interleaved pcm from one frame rate to another.
//
// When from == to pcm itself is returned. Channels are processed
// concurrently and the result is a new interleaved buffer.
func Resample(pcm []float32, channels, from, to int, mode Mode) ([]float32, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidChannelCount, channels)
	}
	if len(pcm)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a whole number of %d channel frames", audio.ErrInvalidArguments, len(pcm), channels)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown resample mode %v", audio.ErrInvalidArguments, mode)
	}
	if err := Validate(from, to); err != nil {
		return nil, err
	}

	if from == to {
		return pcm, nil
	}

	n := len(pcm) / channels
	if n == 0 {
		return []float32{}, nil
	}

	outFrames := OutputFrames(mode, n, from, to)
	if outFrames <= 0 {
		return nil, fmt.Errorf("%w: %d frames at %d Hz produce no output at %d Hz", audio.ErrInvalidFrameRate, n, from, to)
	}

	out := make([]float32, outFrames*channels)
	resampleChannel := mode.kernel()

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for c := range channels {
		g.Go(func() error {
			in := make([]float32, n)
			for f := range n {
				in[f] = pcm[f*channels+c]
			}

			res := make([]float32, outFrames)
			resampleChannel(in, res, from, to)

			for f, v := range res {
				out[f*channels+c] = v
			}
			return nil
		})
	}

	// channel workers never fail
	_ = g.Wait()

	return out, nil
}
