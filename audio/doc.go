// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM building blocks of the acquisition pipeline.
//
// This package contains:
//   - Source interface for streaming decoder output
//   - Registry mapping format keys to decoders
//   - ReadAll to materialize a Source into a Decoded buffer
//   - SelectFrames to cut a time range, with optional padding
//   - MixChannels, SelectChannels and DownmixMono for channel layout
//   - the sentinel errors shared by every package of the module
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every decoder under formats/ returns a Source. ReadSamples writes
// interleaved samples and returns io.EOF once the stream is finished.
//
// # Materializing
//
//	src, _ := registry.Open("wav", r)
//	decoded, err := audio.ReadAll(src)
//
// A read error in the middle of the stream does not fail ReadAll if at least
// one frame was decoded. The partial frame is dropped and the cause is kept in
// Decoded.Truncated.
//
// # Time ranges
//
// Millisecond offsets map to frames as floor(ms * rate / 1000). A range that
// ends past the stream is truncated, zero padded (PadZero) or filled by
// looping the selection (PadRepeat).
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
package audio
