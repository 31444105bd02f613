// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/utils"
)

// flacReader is an interface for flac.Stream to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source wraps a mewkiz/flac stream to implement audio.Source
type source struct {
	stream     flacReader
	sampleRate int
	channels   int
	bitDepth   int
	// interleaved samples of the last parsed frame not yet handed out
	pending []float32
	frame   []float32
	done    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }
func (s *source) BufSize() int {
	if cap(s.frame) > 0 {
		return cap(s.frame)
	}
	return 4096 * s.channels
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// next parses one FLAC frame into s.pending.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.done = true
		return nil
	}
	if err != nil {
		s.done = true
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		s.done = true
		return fmt.Errorf("%w: frame has %d channels, stream has %d",
			ErrUnsupportedFlacLayout, len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		blockSize = min(blockSize, len(sub.Samples))
	}

	size := blockSize * s.channels
	if cap(s.frame) < size {
		s.frame = make([]float32, size)
	}
	s.frame = s.frame[:size]

	for ch, sub := range f.Subframes {
		for i, v := range sub.Samples[:blockSize] {
			s.frame[i*s.channels+ch] = utils.IntToFloat32(int(v), s.bitDepth)
		}
	}
	s.pending = s.frame

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, fmt.Errorf("%w: missing stream info", ErrUnsupportedFlacLayout)
	}
	if info.BitsPerSample == 0 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFlacLayout, info.BitsPerSample)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
