// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestMillisecondsToFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ms   uint64
		rate int
		want int
	}{
		{0, 44100, 0},
		{1000, 44100, 44100},
		{1, 44100, 44},
		{999, 8000, 7992},
		{1500, 22050, 33075},
		{3, 333, 0},
		{1_000_000_000_000, 48000, 48_000_000_000_000},
		{10, 0, 0},
		{209146758205324000, 44100, math.MaxInt},
		{math.MaxUint64, 44100, math.MaxInt},
		{math.MaxUint64, 1, math.MaxUint64 / 1000},
	}

	for _, tt := range tests {
		if got := MillisecondsToFrames(tt.ms, tt.rate); got != tt.want {
			t.Errorf("MillisecondsToFrames(%d, %d) = %d, want %d", tt.ms, tt.rate, got, tt.want)
		}
	}
}

// ramp returns frames mono samples 0,1,2,...
func ramp(frames int) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func TestSelectFrames(t *testing.T) {
	t.Parallel()

	// 10 frames at 1000 Hz, one frame per millisecond
	pcm := ramp(10)

	tests := []struct {
		name string
		rng  Range
		want []float32
	}{
		{"whole stream", Range{}, ramp(10)},
		{"start only", Range{StartMs: 7}, []float32{7, 8, 9}},
		{"start and end", Range{StartMs: 2, EndMs: 5, HasEnd: true}, []float32{2, 3, 4}},
		{"end past stream truncates", Range{StartMs: 8, EndMs: 20, HasEnd: true}, []float32{8, 9}},
		{"zero pad", Range{StartMs: 8, EndMs: 12, HasEnd: true, Padding: PadZero}, []float32{8, 9, 0, 0}},
		{"repeat pad", Range{StartMs: 7, EndMs: 15, HasEnd: true, Padding: PadRepeat}, []float32{7, 8, 9, 7, 8, 9, 7, 8}},
		{"padding not needed", Range{EndMs: 3, HasEnd: true, Padding: PadZero}, []float32{0, 1, 2}},
		{"zero pad without end", Range{StartMs: 9, Padding: PadZero}, []float32{9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SelectFrames(pcm, 1, 1000, tt.rng)
			if err != nil {
				t.Fatalf("SelectFrames() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectFrames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectFrames_Stereo(t *testing.T) {
	t.Parallel()

	// 4 stereo frames at 2000 Hz
	pcm := []float32{0, 10, 1, 11, 2, 12, 3, 13}

	got, err := SelectFrames(pcm, 2, 2000, Range{StartMs: 1, EndMs: 3, HasEnd: true, Padding: PadZero})
	if err != nil {
		t.Fatalf("SelectFrames() error = %v", err)
	}

	want := []float32{2, 12, 3, 13, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectFrames() = %v, want %v", got, want)
	}
}

func TestSelectFrames_Errors(t *testing.T) {
	t.Parallel()

	pcm := ramp(10)

	tests := []struct {
		name     string
		channels int
		rate     int
		rng      Range
		wantErr  error
	}{
		{"end equals start", 1, 1000, Range{StartMs: 5, EndMs: 5, HasEnd: true}, ErrInvalidTimeRange},
		{"end before start", 1, 1000, Range{StartMs: 5, EndMs: 2, HasEnd: true}, ErrInvalidTimeRange},
		{"start past stream", 1, 1000, Range{StartMs: 10}, ErrInvalidTimeRange},
		{"start past stream with zero pad", 1, 1000, Range{StartMs: 11, EndMs: 20, HasEnd: true, Padding: PadZero}, ErrInvalidTimeRange},
		{"range below frame resolution", 1, 100, Range{StartMs: 1, EndMs: 5, HasEnd: true}, ErrInvalidTimeRange},
		{"no channels", 0, 1000, Range{}, ErrInvalidChannelCount},
		{"no rate", 1, 0, Range{}, ErrInvalidFrameRate},
		{"start beyond int range", 1, 44100, Range{StartMs: 209146758205324000}, ErrInvalidTimeRange},
		{"zero pad beyond int range", 1, 44100, Range{EndMs: math.MaxUint64, HasEnd: true, Padding: PadZero}, ErrInvalidTimeRange},
		{"repeat pad beyond int range", 2, 44100, Range{StartMs: 0, EndMs: math.MaxUint64, HasEnd: true, Padding: PadRepeat}, ErrInvalidTimeRange},
		{"zero pad too large to allocate", 1, 1000, Range{EndMs: 1 << 40, HasEnd: true, Padding: PadZero}, ErrInvalidTimeRange},
		{"unknown padding", 1, 1000, Range{EndMs: 20, HasEnd: true, Padding: Padding(9)}, ErrInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := SelectFrames(pcm, tt.channels, tt.rate, tt.rng)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SelectFrames() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSelectFrames_HugeEndTruncates(t *testing.T) {
	t.Parallel()

	got, err := SelectFrames(ramp(10), 1, 1000, Range{StartMs: 7, EndMs: math.MaxUint64, HasEnd: true})
	if err != nil {
		t.Fatalf("SelectFrames() error = %v", err)
	}
	if want := []float32{7, 8, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("SelectFrames() = %v, want %v", got, want)
	}
}

func TestPadding_String(t *testing.T) {
	t.Parallel()

	for p, want := range map[Padding]string{PadNone: "none", PadZero: "zero", PadRepeat: "repeat", Padding(7): "Padding(7)"} {
		if got := p.String(); got != want {
			t.Errorf("Padding.String() = %q, want %q", got, want)
		}
	}
}
