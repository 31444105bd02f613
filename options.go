// SPDX-License-Identifier: EPL-2.0

package audacq

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/resample"
)

// Option configures an acquisition.
//
//	opts, err := audacq.NewOptions(
//	    audacq.WithStartTime(1000),
//	    audacq.WithEndTime(5000),
//	    audacq.WithMono(),
//	    audacq.WithFrameRate(16000),
//	)
type Option func(*Options)

// Options is the validated configuration of an acquisition.
//
// The zero value decodes the whole input and keeps its channels and frame
// rate. Build other values with NewOptions, they are never changed after.
type Options struct {
	startMs  uint64
	hasStart bool
	endMs    uint64
	hasEnd   bool

	zeroPad   bool
	repeatPad bool

	channels    int
	hasChannels bool
	mono        bool

	frameRate    int
	hasFrameRate bool
	mode         resample.Mode

	registry *audio.Registry
	logger   *zap.Logger
}

// WithStartTime skips the audio before ms milliseconds.
func WithStartTime(ms uint64) Option {
	return func(o *Options) {
		o.startMs = ms
		o.hasStart = true
	}
}

// WithEndTime stops the selection at ms milliseconds.
func WithEndTime(ms uint64) Option {
	return func(o *Options) {
		o.endMs = ms
		o.hasEnd = true
	}
}

// WithZeroPadEnding fills an end time past the decoded audio with silence.
func WithZeroPadEnding() Option {
	return func(o *Options) {
		o.zeroPad = true
	}
}

// WithRepeatPadEnding fills an end time past the decoded audio by looping
// the selected audio from its start.
func WithRepeatPadEnding() Option {
	return func(o *Options) {
		o.repeatPad = true
	}
}

// WithChannels keeps the first n channels of the source.
func WithChannels(n int) Option {
	return func(o *Options) {
		o.channels = n
		o.hasChannels = true
	}
}

// WithMono averages the (selected) channels into one.
func WithMono() Option {
	return func(o *Options) {
		o.mono = true
	}
}

// WithFrameRate resamples the result to hz.
func WithFrameRate(hz int) Option {
	return func(o *Options) {
		o.frameRate = hz
		o.hasFrameRate = true
	}
}

// WithResampleMode picks the resampling algorithm, resample.ModeDefault when unset.
func WithResampleMode(m resample.Mode) Option {
	return func(o *Options) {
		o.mode = m
	}
}

// WithRegistry decodes with reg instead of formats.Default().
func WithRegistry(reg *audio.Registry) Option {
	return func(o *Options) {
		o.registry = reg
	}
}

// WithLogger sets the logger that receives per stage debug entries and
// truncation warnings.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// NewOptions applies opts and validates the combination.
func NewOptions(opts ...Option) (Options, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasStart && o.hasEnd && o.endMs <= o.startMs {
		return Options{}, fmt.Errorf("%w: end %dms is not after start %dms", ErrInvalidTimeRange, o.endMs, o.startMs)
	}
	if o.hasChannels && o.channels <= 0 {
		return Options{}, fmt.Errorf("%w: %d", ErrInvalidChannelCount, o.channels)
	}
	if o.mono && o.hasChannels && o.channels == 1 {
		return Options{}, fmt.Errorf("%w: %w: mono conversion of a single channel", ErrInvalidArguments, ErrInvalidChannelCount)
	}
	if o.hasFrameRate && o.frameRate <= 0 {
		return Options{}, fmt.Errorf("%w: %d Hz", ErrInvalidFrameRate, o.frameRate)
	}
	if o.zeroPad && o.repeatPad {
		return Options{}, fmt.Errorf("%w: zero padding and repeat padding are exclusive", ErrInvalidArguments)
	}
	if !o.mode.Valid() {
		return Options{}, fmt.Errorf("%w: unknown resample mode %v", ErrInvalidArguments, o.mode)
	}

	return o, nil
}

// StartTime returns the start offset in milliseconds and whether it was set.
func (o Options) StartTime() (uint64, bool) { return o.startMs, o.hasStart }

// EndTime returns the end offset in milliseconds and whether it was set.
func (o Options) EndTime() (uint64, bool) { return o.endMs, o.hasEnd }

// Channels returns the requested channel count and whether it was set.
func (o Options) Channels() (int, bool) { return o.channels, o.hasChannels }

// FrameRate returns the requested frame rate and whether it was set.
func (o Options) FrameRate() (int, bool) { return o.frameRate, o.hasFrameRate }

// Mono reports whether the channels are averaged into one.
func (o Options) Mono() bool { return o.mono }

// ResampleMode returns the algorithm used when a frame rate is requested.
func (o Options) ResampleMode() resample.Mode { return o.mode }

// Padding reports how a selection ending past the audio is completed.
func (o Options) Padding() audio.Padding {
	switch {
	case o.zeroPad:
		return audio.PadZero
	case o.repeatPad:
		return audio.PadRepeat
	default:
		return audio.PadNone
	}
}

func (o Options) timeRange() audio.Range {
	return audio.Range{
		StartMs: o.startMs,
		EndMs:   o.endMs,
		HasEnd:  o.hasEnd,
		Padding: o.Padding(),
	}
}

func (o Options) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}
