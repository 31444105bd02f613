// SPDX-License-Identifier: EPL-2.0

package audacq

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/formats/wav"
	"github.com/ik5/audacq/resample"
	"github.com/ik5/audacq/utils"
	"github.com/orcaman/writerseeker"
)

// Waveform is decoded audio held in memory as interleaved float32 frames.
// It is never modified once built and is safe for concurrent reads.
type Waveform struct {
	samples   []float32
	frameRate int
	channels  int
}

// maxSilenceSamples bounds the buffer FromSilence may allocate.
const maxSilenceSamples = 1 << 30

// newWaveform takes ownership of samples.
func newWaveform(samples []float32, frameRate, channels int) (*Waveform, error) {
	if frameRate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidFrameRate, frameRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a whole number of %d channel frames",
			ErrInvalidChannelCount, len(samples), channels)
	}

	return &Waveform{
		samples:   samples[:len(samples):len(samples)],
		frameRate: frameRate,
		channels:  channels,
	}, nil
}

// FromSilence returns frames frames of silence.
func FromSilence(frameRate, channels, frames int) (*Waveform, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d frames", ErrInvalidArguments, frames)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}
	if frames > maxSilenceSamples/channels {
		return nil, fmt.Errorf("%w: %d frames of %d channels is too long", ErrInvalidArguments, frames, channels)
	}

	return newWaveform(make([]float32, frames*channels), frameRate, channels)
}

// FromSilenceDuration returns durationMs milliseconds of silence, rounded
// down to whole frames.
func FromSilenceDuration(frameRate, channels int, durationMs uint64) (*Waveform, error) {
	return FromSilence(frameRate, channels, audio.MillisecondsToFrames(durationMs, frameRate))
}

// FromInterleaved copies samples into a new Waveform.
func FromInterleaved(frameRate, channels int, samples []float32) (*Waveform, error) {
	return newWaveform(append([]float32(nil), samples...), frameRate, channels)
}

// Channels is the number of interleaved channels per frame.
func (w *Waveform) Channels() int { return w.channels }

// FrameRate is the number of frames per second.
func (w *Waveform) FrameRate() int { return w.frameRate }

// FrameCount is the number of whole frames held.
func (w *Waveform) FrameCount() int {
	return len(w.samples) / w.channels
}

// Duration is FrameCount at FrameRate, rounded down to the nanosecond.
func (w *Waveform) Duration() time.Duration {
	return time.Duration(int64(w.FrameCount()) * int64(time.Second) / int64(w.frameRate))
}

// SampleAt returns the sample of channel in frame.
func (w *Waveform) SampleAt(frame, channel int) (float32, error) {
	if frame < 0 || frame >= w.FrameCount() || channel < 0 || channel >= w.channels {
		return 0, fmt.Errorf("%w: sample (%d, %d) outside %d frames of %d channels",
			ErrInvalidArguments, frame, channel, w.FrameCount(), w.channels)
	}

	return w.samples[frame*w.channels+channel], nil
}

// Samples returns a copy of the interleaved samples.
func (w *Waveform) Samples() []float32 {
	return append([]float32(nil), w.samples...)
}

// Resample returns the waveform converted to frameRate. Converting to the
// current rate returns w itself.
func (w *Waveform) Resample(frameRate int, mode resample.Mode) (*Waveform, error) {
	if frameRate == w.frameRate {
		return w, nil
	}

	out, err := resample.Resample(w.samples, w.channels, w.frameRate, frameRate, mode)
	if err != nil {
		return nil, err
	}

	return newWaveform(out, frameRate, w.channels)
}

// EncodeWAV renders the waveform as an integer PCM WAV file of bitDepth
// bits (8, 16, 24 or 32).
func (w *Waveform) EncodeWAV(bitDepth int) ([]byte, error) {
	var buf writerseeker.WriterSeeker
	if err := wav.Encode(&buf, w.frameRate, w.channels, bitDepth, w.samples); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	return io.ReadAll(buf.Reader())
}

// EncodeFloatWAV renders the waveform as a 32-bit IEEE float WAV file.
func (w *Waveform) EncodeFloatWAV() ([]byte, error) {
	var buf writerseeker.WriterSeeker
	if err := wav.EncodeFloat(&buf, w.frameRate, w.channels, w.samples); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	return io.ReadAll(buf.Reader())
}

// WriteWAV16 streams the waveform as 16-bit PCM WAV to out, which does not
// need to be seekable.
func (w *Waveform) WriteWAV16(out io.Writer) error {
	pcm := make([]int16, len(w.samples))
	for i, v := range w.samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return wav.WriteWAV16(out, w.frameRate, w.channels, pcm)
}
