// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved PCM on demand.
// It satisfies audio.Source without importing it to avoid cycles.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int // frames handed out so far
	waveform    func(frame int, channel int) float32

	// failAt is the frame count after which ReadSamples returns failErr, -1 when unset
	failAt  int
	failErr error
	closed  bool
}

// NewMockSource creates a source of totalFrames frames whose samples come
// from waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
		failAt:      -1,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

// NewSineSource creates a source holding the same sine tone on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source where every sample is value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// FailAfter makes ReadSamples return err once frames frames were delivered.
// Reads never cross that boundary, so the failing read returns no samples.
func (m *MockSource) FailAfter(frames int, err error) *MockSource {
	m.failAt = frames
	m.failErr = err
	return m
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	limit := m.totalFrames
	if m.failAt >= 0 {
		if m.generated >= m.failAt {
			return 0, m.failErr
		}
		limit = min(limit, m.failAt)
	}

	if m.generated >= limit {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, limit-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	n := frames * m.channels
	if m.generated >= m.totalFrames {
		return n, io.EOF
	}

	return n, nil
}
