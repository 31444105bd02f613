// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultReadSize = 4096
	maxEmptyReads   = 100
)

// Decoded is a fully materialized PCM stream.
type Decoded struct {
	// Samples holds interleaved float32 samples, len(Samples) is a multiple of Channels.
	Samples   []float32
	Channels  int
	FrameRate int
	// Truncated is the read error that ended the stream early, if any.
	// Samples then hold every complete frame decoded before the failure.
	Truncated error
}

// Frames returns the number of complete frames in d.
func (d Decoded) Frames() int {
	if d.Channels <= 0 {
		return 0
	}

	return len(d.Samples) / d.Channels
}

// ReadAll drains src into a single buffer and closes it.
//
// A read error after at least one complete frame ends the stream: the
// partial frame is dropped and the error is kept in Decoded.Truncated.
// A stream without any complete frame fails with ErrDecode.
func ReadAll(src Source) (out Decoded, err error) {
	defer func() {
		cerr := src.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", ErrDecode, cerr)
		}
	}()

	channels := src.Channels()
	if channels <= 0 {
		return Decoded{}, fmt.Errorf("%w: %w: source reports %d channels", ErrDecode, ErrInvalidChannelCount, channels)
	}

	rate := src.SampleRate()
	if rate <= 0 {
		return Decoded{}, fmt.Errorf("%w: %w: source reports %d Hz", ErrDecode, ErrInvalidFrameRate, rate)
	}

	size := src.BufSize()
	if size < channels {
		size = defaultReadSize
	}
	size -= size % channels
	if size == 0 {
		size = channels
	}

	buf := make([]float32, size)
	samples := make([]float32, 0, size)
	var truncated error
	empty := 0

	for {
		n, rerr := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
			empty = 0
		} else if rerr == nil {
			empty++
			if empty > maxEmptyReads {
				rerr = io.ErrNoProgress
			}
		}

		if errors.Is(rerr, io.EOF) {
			break
		}

		if rerr != nil {
			if len(samples) < channels {
				return Decoded{}, fmt.Errorf("%w: %w", ErrDecode, rerr)
			}
			truncated = rerr
			break
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]
	if len(samples) == 0 {
		return Decoded{}, fmt.Errorf("%w: no decodable frames", ErrDecode)
	}

	return Decoded{
		Samples:   samples,
		Channels:  channels,
		FrameRate: rate,
		Truncated: truncated,
	}, nil
}
