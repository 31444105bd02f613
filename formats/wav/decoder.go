// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/utils"
)

// WAV format tags handled by the decoder.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
	PCMLen() int64
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	float      bool
	intBuf     *goaudio.IntBuffer
	// remaining samples in the data chunk, -1 until the chunk was located
	remaining int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining == 0 {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	// go-audio reports the end of the data chunk as n == 0 without an error
	n, err := s.dec.PCMBuffer(s.intBuf)

	// the chunk reader is not bounded, bytes after the data chunk must not be decoded
	if s.remaining < 0 {
		s.remaining = int(s.dec.PCMLen()) / (s.bitDepth / 8)
	}
	n = min(n, s.remaining)
	s.remaining -= n

	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	data := s.intBuf.Data[:n]
	switch {
	case s.float:
		for i, v := range data {
			dst[i] = math.Float32frombits(uint32(int32(v)))
		}
	case s.bitDepth == 8:
		// 8-bit WAV is unsigned
		for i, v := range data {
			dst[i] = float32(v-128) / 128.0
		}
	default:
		for i, v := range data {
			dst[i] = utils.IntToFloat32(v, s.bitDepth)
		}
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 {
		return nil, fmt.Errorf("%w: no fmt chunk", ErrNotWavFile)
	}
	if dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: sample rate is 0", ErrUnsupportedWavLayout)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	var float bool
	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
	case formatIEEEFloat:
		if bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bitDepth)
		}
		float = true
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   bitDepth,
		float:      float,
		remaining:  -1,
	}, nil
}
