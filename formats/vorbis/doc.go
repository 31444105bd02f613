// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding on top of
// github.com/jfreymuth/oggvorbis.
//
//	source, err := vorbis.Decoder{}.Decode(bytes.NewReader(data))
//
// Samples are interleaved float32 in [-1, 1], clipped by the library.
// Ogg streams carrying other codecs, such as Opus, are rejected with
// ErrNotVorbis.
package vorbis
