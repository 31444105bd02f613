// SPDX-License-Identifier: EPL-2.0

// Package formats ties the codec packages together.
//
// Detect sniffs the container of an encoded buffer from its magic bytes,
// NewRegistry registers every codec decoder under the key Detect returns and
// Decode runs both before draining the stream with audio.ReadAll:
//
//	decoded, err := formats.Decode(data)
//	if errors.Is(err, audio.ErrDecode) {
//	    // not audio, or nothing decodable in it
//	}
//
// Recognized containers:
//
//	RIFF/WAVE         wav
//	FORM/AIFF, AIFC   aiff
//	fLaC              flac
//	OggS + Vorbis     vorbis
//	ID3, MPEG sync    mp3
package formats
