// SPDX-License-Identifier: EPL-2.0

package audacq

import "github.com/ik5/audacq/audio"

// Errors returned by the acquisition API. They are the audio package
// sentinels, so errors.Is works with either name.
var (
	ErrDecode              = audio.ErrDecode
	ErrInvalidChannelCount = audio.ErrInvalidChannelCount
	ErrInvalidTimeRange    = audio.ErrInvalidTimeRange
	ErrInvalidFrameRate    = audio.ErrInvalidFrameRate
	ErrInvalidArguments    = audio.ErrInvalidArguments
)
