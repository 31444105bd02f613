// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"strings"

	"github.com/ik5/audacq/audio"
)

// Mode selects the interpolation algorithm.
type Mode int

const (
	// ModeDefault is ModeCubic.
	ModeDefault Mode = iota
	// ModeCubic is Catmull-Rom interpolation with a one-pole low-pass when downsampling.
	ModeCubic
	// ModeLanczos convolves with a Lanczos window of order 5.
	ModeLanczos
	// ModeSinc is band-limited interpolation with a Kaiser windowed sinc table.
	ModeSinc
)

var modeNames = map[Mode]string{
	ModeDefault: "default",
	ModeCubic:   "cubic",
	ModeLanczos: "lanczos",
	ModeSinc:    "sinc",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode maps a mode name, case insensitive, to its Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeDefault, nil
	}

	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}

	return ModeDefault, fmt.Errorf("%w: unknown resample mode %q", audio.ErrInvalidArguments, s)
}

// kernel resamples one channel. len(out) is already sized by the mode's frame rule.
type kernel func(in, out []float32, from, to int)

func (m Mode) kernel() kernel {
	switch m {
	case ModeLanczos:
		return lanczos
	case ModeSinc:
		return sinc
	default:
		return cubic
	}
}
