// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"fmt"

	"github.com/ik5/audacq/audio"
)

// Format keys used by Detect and the default registry.
const (
	WAV    = "wav"
	MP3    = "mp3"
	Vorbis = "vorbis"
	AIFF   = "aiff"
	FLAC   = "flac"
)

// Detect determines the container of data by examining its magic bytes.
//
// Detection does not validate the rest of the stream, the decoder of the
// returned format does that. Unknown and unsupported inputs (Ogg Opus
// among them) fail with audio.ErrDecode.
func Detect(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: input too small (%d bytes)", audio.ErrDecode, len(data))
	}

	magic := data[:4]

	switch string(magic) {
	case "fLaC":
		return FLAC, nil
	case "RIFF":
		if len(data) >= 12 && string(data[8:12]) == "WAVE" {
			return WAV, nil
		}
	case "FORM":
		if len(data) >= 12 {
			switch string(data[8:12]) {
			case "AIFF", "AIFC":
				return AIFF, nil
			}
		}
	case "OggS":
		return detectOgg(data)
	}

	if string(magic[:3]) == "ID3" {
		return MP3, nil
	}

	// MPEG audio frame sync, layer bits 00 are reserved
	if magic[0] == 0xFF && magic[1]&0xE0 == 0xE0 && magic[1]&0x06 != 0 {
		return MP3, nil
	}

	return "", fmt.Errorf("%w: unrecognized container", audio.ErrDecode)
}

// detectOgg looks at the first packet of the first Ogg page for the codec
// identification header.
func detectOgg(data []byte) (string, error) {
	// 27 byte page header followed by the segment table
	const pageHeader = 27
	if len(data) < pageHeader {
		return "", fmt.Errorf("%w: truncated ogg page", audio.ErrDecode)
	}

	packet := pageHeader + int(data[26])
	if packet > len(data) {
		return "", fmt.Errorf("%w: truncated ogg page", audio.ErrDecode)
	}

	head := data[packet:]
	switch {
	case bytes.HasPrefix(head, []byte("\x01vorbis")):
		return Vorbis, nil
	case bytes.HasPrefix(head, []byte("OpusHead")):
		return "", fmt.Errorf("%w: ogg opus is not supported", audio.ErrDecode)
	}

	return "", fmt.Errorf("%w: unknown ogg codec", audio.ErrDecode)
}
