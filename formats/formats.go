// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"sync"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/formats/aiff"
	"github.com/ik5/audacq/formats/flac"
	"github.com/ik5/audacq/formats/mp3"
	"github.com/ik5/audacq/formats/vorbis"
	"github.com/ik5/audacq/formats/wav"
)

// NewRegistry returns a registry holding a decoder for every format Detect
// recognizes.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(WAV, wav.Decoder{})
	reg.Register(MP3, mp3.Decoder{})
	reg.Register(Vorbis, vorbis.Decoder{})
	reg.Register(AIFF, aiff.Decoder{})
	reg.Register(FLAC, flac.Decoder{})

	return reg
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the shared registry used by Decode. It is built once and
// must be treated as read-only.
func Default() *audio.Registry {
	return defaultRegistry()
}

// Decode detects the container of data and decodes all of it with the
// default registry.
func Decode(data []byte) (audio.Decoded, error) {
	return DecodeWith(Default(), data)
}

// DecodeWith is Decode with a caller supplied registry.
func DecodeWith(reg *audio.Registry, data []byte) (audio.Decoded, error) {
	format, err := Detect(data)
	if err != nil {
		return audio.Decoded{}, err
	}

	src, err := reg.Open(format, bytes.NewReader(data))
	if err != nil {
		return audio.Decoded{}, err
	}

	return audio.ReadAll(src)
}
