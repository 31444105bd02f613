// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// extended80 encodes an integral sample rate as the IEEE 754 80-bit
// extended float used by the AIFF COMM chunk.
func extended80(rate uint64) [10]byte {
	var out [10]byte
	if rate == 0 {
		return out
	}

	e := bits.Len64(rate) - 1
	binary.BigEndian.PutUint16(out[0:], uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:], rate<<(63-e))

	return out
}

// PCM16AIFF builds a big-endian 16-bit AIFF from interleaved samples.
func PCM16AIFF(sampleRate, channels int, samples []int16) []byte {
	payload := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint16(payload[2*i:], uint16(s))
	}

	numFrames := 0
	if channels > 0 {
		numFrames = len(samples) / channels
	}

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(channels))
	binary.Write(comm, binary.BigEndian, uint32(numFrames))
	binary.Write(comm, binary.BigEndian, uint16(16))
	rate := extended80(uint64(sampleRate))
	comm.Write(rate[:])

	ssndSize := 8 + len(payload)
	formSize := 4 + (8 + comm.Len()) + (8 + ssndSize)

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(formSize))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	binary.Write(buf, binary.BigEndian, uint32(comm.Len()))
	buf.Write(comm.Bytes())

	buf.WriteString("SSND")
	binary.Write(buf, binary.BigEndian, uint32(ssndSize))
	binary.Write(buf, binary.BigEndian, uint32(0)) // offset
	binary.Write(buf, binary.BigEndian, uint32(0)) // block size
	buf.Write(payload)

	return buf.Bytes()
}
