// SPDX-License-Identifier: EPL-2.0

package audiotest

// MP3FrameSamples is the number of frames one MPEG-1 Layer III frame decodes to.
const MP3FrameSamples = 1152

// mp3FrameSize is the byte length of a 128 kbps, 44100 Hz frame without padding.
const mp3FrameSize = 417

// SilentMP3 builds an MPEG-1 Layer III stream of frames joint-stereo frames
// at 44100 Hz and 128 kbps. Side info and main data are zero, so every frame
// decodes to silence.
func SilentMP3(frames int) []byte {
	out := make([]byte, 0, frames*mp3FrameSize)
	for range frames {
		out = append(out, silentMP3Frame()...)
	}

	return out
}

func silentMP3Frame() []byte {
	frame := make([]byte, mp3FrameSize)
	// sync, MPEG-1, layer III, no CRC | 128 kbps, 44100 Hz | joint stereo, original
	copy(frame, []byte{0xFF, 0xFB, 0x90, 0x44})

	return frame
}
