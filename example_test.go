// SPDX-License-Identifier: EPL-2.0

package audacq_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ik5/audacq"
	"github.com/ik5/audacq/internal/audiotest"
	"github.com/ik5/audacq/resample"
)

// Example_basicUsage decodes a WAV file as is.
func Example_basicUsage() {
	data := audiotest.SineWAV(44100, 2, 44100, 440)

	wf, err := audacq.Acquire(data, audacq.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d frames, %d channels at %d Hz (%v)\n",
		wf.FrameCount(), wf.Channels(), wf.FrameRate(), wf.Duration())
	// Output: 44100 frames, 2 channels at 44100 Hz (1s)
}

// Example_timeRange selects a window and pads it past the end of the audio.
func Example_timeRange() {
	// 500ms of audio
	data := audiotest.SineWAV(8000, 1, 4000, 440)

	opts, err := audacq.NewOptions(
		audacq.WithStartTime(250),
		audacq.WithEndTime(1000),
		audacq.WithZeroPadEnding(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	wf, err := audacq.Acquire(data, opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(wf.FrameCount(), wf.Duration())
	// Output: 6000 750ms
}

// Example_resampleModes shows that modes round the output length differently.
func Example_resampleModes() {
	wf, _ := audacq.FromSilence(8000, 1, 100)

	for _, mode := range []resample.Mode{resample.ModeCubic, resample.ModeLanczos, resample.ModeSinc} {
		out, err := wf.Resample(16000, mode)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %d\n", mode, out.FrameCount())
	}
	// Output:
	// cubic: 199
	// lanczos: 200
	// sinc: 200
}

// Example_errorHandling matches the sentinel errors.
func Example_errorHandling() {
	_, err := audacq.NewOptions(audacq.WithMono(), audacq.WithChannels(1))
	fmt.Println(errors.Is(err, audacq.ErrInvalidArguments), errors.Is(err, audacq.ErrInvalidChannelCount))

	_, err = audacq.Acquire([]byte("not audio"), audacq.Options{})
	fmt.Println(errors.Is(err, audacq.ErrDecode))

	opts, _ := audacq.NewOptions(audacq.WithChannels(3))
	_, err = audacq.Acquire(audiotest.SineWAV(8000, 2, 80, 440), opts)
	fmt.Println(errors.Is(err, audacq.ErrInvalidChannelCount))
	// Output:
	// true true
	// true
	// true
}

func ExampleFromSilenceDuration() {
	wf, _ := audacq.FromSilenceDuration(44100, 2, 10000)
	fmt.Println(wf.FrameCount(), wf.Channels(), wf.FrameRate())
	// Output: 441000 2 44100
}

func ExampleResampleToMono16() {
	data := audiotest.SineWAV(16000, 2, 1600, 440)

	pcm16, rate, err := audacq.ResampleToMono16(data, 8000, resample.ModeDefault)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(pcm16), rate)
	// Output: 800 8000
}

func ExampleAcquireMany() {
	inputs := []audacq.NamedInput{
		{Name: "tone", Data: audiotest.SineWAV(8000, 1, 800, 440)},
		{Name: "junk", Data: []byte("junk")},
	}

	results := audacq.AcquireMany(context.Background(), inputs, audacq.Options{}, 2)
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%s: failed\n", res.Name)
			continue
		}
		fmt.Printf("%s: %d frames\n", res.Name, res.Waveform.FrameCount())
	}
	// Output:
	// tone: 800 frames
	// junk: failed
}

func ExampleWaveform_EncodeWAV() {
	wf, _ := audacq.FromSilence(22050, 2, 100)

	data, err := wf.EncodeWAV(16)
	if err != nil {
		fmt.Println(err)
		return
	}

	back, _ := audacq.Acquire(data, audacq.Options{})
	fmt.Println(len(data), back.FrameCount(), back.Channels())
	// Output: 444 100 2
}
