// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAV format tags.
const (
	FormatPCM   = 1
	FormatFloat = 3
)

// WAVSpec describes a synthetic RIFF/WAVE file.
type WAVSpec struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	AudioFormat   int
	// Extra chunks written between "fmt " and "data", as id -> payload.
	Extra [][2]string
	// DataSize overrides the declared size of the data chunk when > 0.
	DataSize uint32
}

// BuildWAV assembles a WAV file around the raw little-endian payload.
func BuildWAV(spec WAVSpec, payload []byte) []byte {
	buf := new(bytes.Buffer)

	format := spec.AudioFormat
	if format == 0 {
		format = FormatPCM
	}

	numChannels := uint16(spec.Channels)
	bits := uint16(spec.BitsPerSample)
	byteRate := uint32(spec.SampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)

	dataSize := uint32(len(payload))
	if spec.DataSize > 0 {
		dataSize = spec.DataSize
	}

	extra := new(bytes.Buffer)
	for _, chunk := range spec.Extra {
		extra.WriteString(chunk[0])
		binary.Write(extra, binary.LittleEndian, uint32(len(chunk[1])))
		extra.WriteString(chunk[1])
		if len(chunk[1])%2 == 1 {
			extra.WriteByte(0)
		}
	}

	riffSize := 4 + 24 + uint32(extra.Len()) + 8 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(spec.SampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.Write(extra.Bytes())

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(payload)

	return buf.Bytes()
}

// PCM16WAV builds a 16-bit PCM WAV from interleaved samples.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	payload := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(payload[2*i:], uint16(s))
	}

	return BuildWAV(WAVSpec{SampleRate: sampleRate, Channels: channels, BitsPerSample: 16}, payload)
}

// Float32WAV builds an IEEE float WAV from interleaved samples.
func Float32WAV(sampleRate, channels int, samples []float32) []byte {
	payload := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(payload[4*i:], math.Float32bits(s))
	}

	return BuildWAV(WAVSpec{SampleRate: sampleRate, Channels: channels, BitsPerSample: 32, AudioFormat: FormatFloat}, payload)
}

// SineWAV builds a 16-bit PCM WAV holding frames of a sine tone on every channel.
func SineWAV(sampleRate, channels, frames int, frequency float64) []byte {
	samples := make([]int16, frames*channels)
	for f := range frames {
		v := math.Sin(2 * math.Pi * frequency * float64(f) / float64(sampleRate))
		for c := range channels {
			samples[f*channels+c] = int16(v * 16384)
		}
	}

	return PCM16WAV(sampleRate, channels, samples)
}

// RampWAV builds a 16-bit PCM WAV where channel c of frame f holds f*channels+c.
// Values are readable back as float32(f*channels+c)/32768.
func RampWAV(sampleRate, channels, frames int) []byte {
	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = int16(i)
	}

	return PCM16WAV(sampleRate, channels, samples)
}
