// SPDX-License-Identifier: EPL-2.0

// Command audacq decodes audio files and converts them to WAV.
//
//	audacq info song.mp3 voice.ogg
//	audacq convert --start-ms 1000 --end-ms 6000 --mono --rate 16000 song.flac clip.wav
//	audacq batch --workers 4 *.wav
//
// Every flag can also be set through an AUDACQ_* environment variable.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "audacq:", err)
		os.Exit(1)
	}
}
