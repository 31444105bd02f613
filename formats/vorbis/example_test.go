// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audacq/audio"
	"github.com/ik5/audacq/formats/vorbis"
)

// ExampleDecoder_Decode decodes an Ogg Vorbis file and downmixes it to mono.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := audio.ReadAll(src)
	if err != nil {
		log.Fatal(err)
	}

	mono := audio.DownmixMono(decoded.Samples, decoded.Channels)
	fmt.Printf("%d mono frames at %d Hz\n", len(mono), decoded.FrameRate)
}
