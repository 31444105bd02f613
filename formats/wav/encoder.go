// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audacq/utils"
)

// Encode writes interleaved float32 samples as integer PCM WAV of bitDepth bits (8, 16, 24 or 32).
func Encode(w io.WriteSeeker, sampleRate, channels, bitDepth int, samples []float32) error {
	if err := checkLayout(sampleRate, channels, samples); err != nil {
		return err
	}

	data := make([]int, len(samples))
	switch bitDepth {
	case 8:
		for i, v := range samples {
			data[i] = utils.Float32ToInt(v, 8) + 128
		}
	case 16, 24, 32:
		for i, v := range samples {
			data[i] = utils.Float32ToInt(v, bitDepth)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return encode(w, sampleRate, channels, bitDepth, formatPCM, data)
}

// EncodeFloat writes interleaved samples as 32-bit IEEE float WAV.
func EncodeFloat(w io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if err := checkLayout(sampleRate, channels, samples); err != nil {
		return err
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(int32(math.Float32bits(v)))
	}

	return encode(w, sampleRate, channels, 32, formatIEEEFloat, data)
}

func checkLayout(sampleRate, channels int, samples []float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedWavLayout, sampleRate)
	}
	if channels <= 0 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples over %d channels", ErrUnsupportedWavLayout, len(samples), channels)
	}

	return nil
}

func encode(w io.WriteSeeker, sampleRate, channels, bitDepth, format int, data []int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, format)

	// Write always runs, even without data, so that the header is emitted
	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
