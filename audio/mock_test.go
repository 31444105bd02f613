// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var errCorrupt = errors.New("corrupt frame")

// brokenSource replays samples in chunks of chunk values and fails with
// errCorrupt once they are used up.
type brokenSource struct {
	sampleRate int
	channels   int
	samples    []float32
	chunk      int
	closed     bool
}

func (b *brokenSource) SampleRate() int { return b.sampleRate }
func (b *brokenSource) Channels() int   { return b.channels }
func (b *brokenSource) BufSize() int    { return 64 }
func (b *brokenSource) Close() error    { b.closed = true; return nil }

func (b *brokenSource) ReadSamples(dst []float32) (int, error) {
	if len(b.samples) == 0 {
		return 0, errCorrupt
	}

	n := copy(dst[:min(len(dst), b.chunk)], b.samples)
	b.samples = b.samples[n:]

	return n, nil
}

// stalledSource never produces data nor reports EOF.
type stalledSource struct {
	sampleRate int
	channels   int
}

func (s *stalledSource) SampleRate() int                        { return s.sampleRate }
func (s *stalledSource) Channels() int                          { return s.channels }
func (s *stalledSource) BufSize() int                           { return 64 }
func (s *stalledSource) Close() error                           { return nil }
func (s *stalledSource) ReadSamples(dst []float32) (int, error) { return 0, nil }
