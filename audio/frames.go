// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"math/bits"
)

// Padding controls how a range ending past the available audio is filled.
type Padding int

const (
	// PadNone truncates the selection to the available frames.
	PadNone Padding = iota
	// PadZero fills the missing tail with silence.
	PadZero
	// PadRepeat fills the missing tail by looping the selected audio.
	PadRepeat
)

func (p Padding) String() string {
	switch p {
	case PadNone:
		return "none"
	case PadZero:
		return "zero"
	case PadRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// Range is a time window in milliseconds.
// StartMs defaults to the beginning of the stream, EndMs is only honored when HasEnd is set.
type Range struct {
	StartMs uint64
	EndMs   uint64
	HasEnd  bool
	Padding Padding
}

// maxPaddedSamples bounds the buffer a padded selection may allocate.
const maxPaddedSamples = 1 << 30

// MillisecondsToFrames converts ms to a frame index at rate, rounding down.
// Indexes that do not fit in an int saturate to math.MaxInt.
func MillisecondsToFrames(ms uint64, rate int) int {
	if rate <= 0 {
		return 0
	}

	hi, lo := bits.Mul64(ms, uint64(rate))
	if hi >= 1000 {
		return math.MaxInt
	}
	frames, _ := bits.Div64(hi, lo, 1000)
	if frames > math.MaxInt {
		return math.MaxInt
	}

	return int(frames)
}

// SelectFrames returns the frames of pcm that fall inside rng.
//
// The result shares storage with pcm unless padding was applied.
func SelectFrames(pcm []float32, channels, rate int, rng Range) ([]float32, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidFrameRate, rate)
	}
	if rng.HasEnd && rng.EndMs <= rng.StartMs {
		return nil, fmt.Errorf("%w: end %dms is not after start %dms", ErrInvalidTimeRange, rng.EndMs, rng.StartMs)
	}

	available := len(pcm) / channels
	start := MillisecondsToFrames(rng.StartMs, rate)
	if start >= available {
		return nil, fmt.Errorf("%w: start frame %d is past the %d available frames", ErrInvalidTimeRange, start, available)
	}

	if !rng.HasEnd {
		return pcm[start*channels : available*channels], nil
	}

	end := MillisecondsToFrames(rng.EndMs, rate)
	if end <= start {
		return nil, fmt.Errorf("%w: %dms..%dms selects no frames at %d Hz", ErrInvalidTimeRange, rng.StartMs, rng.EndMs, rate)
	}

	if end <= available || rng.Padding == PadNone {
		end = min(end, available)
		return pcm[start*channels : end*channels], nil
	}

	if end-start > maxPaddedSamples/channels {
		return nil, fmt.Errorf("%w: padding %dms..%dms needs %d frames", ErrInvalidTimeRange, rng.StartMs, rng.EndMs, end-start)
	}

	selected := pcm[start*channels : available*channels]
	out := make([]float32, (end-start)*channels)
	n := copy(out, selected)

	switch rng.Padding {
	case PadZero:
		// make already zeroed the tail
	case PadRepeat:
		for n < len(out) {
			n += copy(out[n:], selected)
		}
	default:
		return nil, fmt.Errorf("%w: unknown padding %v", ErrInvalidArguments, rng.Padding)
	}

	return out, nil
}
