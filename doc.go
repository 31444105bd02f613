// SPDX-License-Identifier: EPL-2.0

// Package audacq turns encoded audio into in-memory waveforms.
//
// Acquire takes the bytes of an audio file, detects its container, decodes
// it and shapes the result according to Options:
//
//	opts, err := audacq.NewOptions(
//	    audacq.WithStartTime(1000),
//	    audacq.WithEndTime(4000),
//	    audacq.WithZeroPadEnding(),
//	    audacq.WithMono(),
//	    audacq.WithFrameRate(16000),
//	)
//	wf, err := audacq.Acquire(data, opts)
//
// The stages always run in the same order. The time range is cut at the
// decoded frame rate (a millisecond offset maps to floor(ms*rate/1000)),
// then channels are selected or averaged, and resampling comes last. Each
// stage fails with one of the exported sentinel errors, match them with
// errors.Is.
//
// # Supported Formats
//
//   - WAV: PCM 8, 16, 24 and 32-bit, 32-bit float (formats/wav)
//   - MP3 (formats/mp3)
//   - Ogg Vorbis (formats/vorbis)
//   - AIFF: PCM 8, 16, 24 and 32-bit (formats/aiff)
//   - FLAC (formats/flac)
//
// # Waveforms
//
// A Waveform is never modified once built. Resample returns a new one,
// and resampling to the current rate returns the same value. Each
// resample.Mode has its own rule for the number of output frames, so two
// modes may disagree by one frame for the same conversion.
//
// EncodeWAV and WriteWAV16 turn a Waveform back into a WAV file.
//
// # Batches
//
// AcquireMany acquires many buffers in parallel and reports one result per
// input; Results.Err combines the failures.
//
// # Logging
//
// WithLogger attaches a *zap.Logger. Every stage logs at debug level, and a
// stream that broke off mid-way is logged at warn level with the frames that
// could be kept.
package audacq
