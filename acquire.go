// SPDX-License-Identifier: EPL-2.0

package audacq

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/formats"
	"github.com/ik5/audacq/resample"
)

// Acquire decodes data and shapes it according to opts.
//
// The stages run in a fixed order: decode, select the time range at the
// decoded frame rate, map channels, then resample when a different frame
// rate was requested. No Waveform is returned when any stage fails.
func Acquire(data []byte, opts Options) (*Waveform, error) {
	reg := opts.registry
	if reg == nil {
		reg = formats.Default()
	}

	decoded, err := formats.DecodeWith(reg, data)
	if err != nil {
		return nil, err
	}

	return shape(decoded, opts)
}

// AcquireSource drains src and shapes it like Acquire. src is closed.
func AcquireSource(src audio.Source, opts Options) (*Waveform, error) {
	decoded, err := audio.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return shape(decoded, opts)
}

func shape(decoded audio.Decoded, opts Options) (*Waveform, error) {
	log := opts.log()

	log.Debug("decoded",
		zap.Int("frames", decoded.Frames()),
		zap.Int("channels", decoded.Channels),
		zap.Int("frame_rate", decoded.FrameRate),
	)
	if decoded.Truncated != nil {
		log.Warn("decoding stopped early, keeping complete frames",
			zap.Int("frames", decoded.Frames()),
			zap.Error(decoded.Truncated),
		)
	}

	rng := opts.timeRange()
	pcm, err := audio.SelectFrames(decoded.Samples, decoded.Channels, decoded.FrameRate, rng)
	if err != nil {
		return nil, err
	}
	log.Debug("selected",
		zap.Uint64("start_ms", rng.StartMs),
		zap.Uint64("end_ms", rng.EndMs),
		zap.Bool("has_end", rng.HasEnd),
		zap.Stringer("padding", rng.Padding),
		zap.Int("frames", len(pcm)/decoded.Channels),
	)

	pcm, channels, err := audio.MixChannels(pcm, decoded.Channels, opts.channels, opts.mono)
	if err != nil {
		return nil, err
	}
	log.Debug("mixed", zap.Int("channels", channels), zap.Bool("mono", opts.mono))

	rate := decoded.FrameRate
	if opts.hasFrameRate && opts.frameRate != rate {
		pcm, err = resample.Resample(pcm, channels, rate, opts.frameRate, opts.mode)
		if err != nil {
			return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", rate, opts.frameRate, err)
		}
		log.Debug("resampled",
			zap.Int("from", rate),
			zap.Int("to", opts.frameRate),
			zap.Stringer("mode", opts.mode),
			zap.Int("frames", len(pcm)/channels),
		)
		rate = opts.frameRate
	}

	return newWaveform(pcm, rate, channels)
}
