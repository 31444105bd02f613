// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrDecode is returned when the input cannot be recognized or decoded.
	ErrDecode              = errors.New("unable to decode audio")
	ErrInvalidChannelCount = errors.New("invalid channel count")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidFrameRate    = errors.New("invalid frame rate")
	ErrInvalidArguments    = errors.New("invalid arguments")
)
