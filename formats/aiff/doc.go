// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - uncompressed AIFF
//   - signed PCM 8, 16, 24 and 32-bit
//   - any channel count and sample rate
//
// # Decoding AIFF Files
//
//	source, err := aiff.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are float32 values in the range [-1.0, 1.0]. Reading stops after
// the number of frames declared in the COMM chunk.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: zero channels or zero sample rate
//
// AIFF-C files with a compression type are not supported.
package aiff
