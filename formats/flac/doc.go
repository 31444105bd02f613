// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC (Free Lossless Audio Codec) decoding.
//
// Decoding is built on github.com/mewkiz/flac and works on any io.Reader,
// frames are parsed one at a time as samples are requested.
//
//	source, err := flac.Decoder{}.Decode(file)
//	buf := make([]float32, source.BufSize())
//	n, err := source.ReadSamples(buf)
//
// Samples of every bit depth from 4 to 32 are scaled to float32 in the range
// [-1.0, 1.0]. A stream that breaks off mid-way returns the samples decoded so
// far together with the parse error.
//
// Errors:
//   - ErrNotFlacFile: the input has no "fLaC" signature or STREAMINFO block
//   - ErrUnsupportedFlacLayout: a frame disagrees with STREAMINFO
package flac
