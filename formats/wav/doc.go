// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and Encode are built on github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit
//   - IEEE float 32-bit
//   - WAVE_FORMAT_EXTENSIBLE carrying integer PCM
//   - any channel count and sample rate
//
// # Decoding WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Only the data chunk is decoded, chunks
// that follow it are ignored. A data chunk that is cut short ends the
// stream early instead of failing.
//
// # Writing WAV Files
//
// Encode needs an io.WriteSeeker because the sizes in the header are
// patched once the payload is written:
//
//	err := wav.Encode(file, 44100, 2, 16, samples)
//
// WriteWAV16 streams already quantized 16-bit samples to any io.Writer.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: zero sample rate or a partial frame
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32
//   - ErrUnsupportedEncoding: a compressed format tag such as A-law
package wav
