// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MPEG-1/2 Layer III decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. The library always
// produces stereo 16-bit PCM, mono files come out with the channel
// duplicated.
//
//	source, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The input is read lazily. A stream that breaks after some good frames
// yields those frames followed by the decoding error, so the caller can
// keep the audio decoded so far.
package mp3
