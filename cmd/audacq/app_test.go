// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audacq"
	"github.com/ik5/audacq/internal/audiotest"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"audacq"}, args...))

	return out.String(), err
}

func TestInfo(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "ramp.wav", audiotest.RampWAV(8000, 2, 4000))

	out, err := run(t, "info", path)
	require.NoError(t, err)
	assert.Equal(t, path+": wav, 8000 Hz, 2 channels, 4000 frames, 500ms\n", out)
}

func TestInfo_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "info")
	assert.Error(t, err)

	_, err = run(t, "info", writeFile(t, "junk.bin", []byte("junk data")))
	assert.ErrorIs(t, err, audacq.ErrDecode)

	_, err = run(t, "info", filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	in := writeFile(t, "in.wav", audiotest.SineWAV(8000, 2, 800, 440))
	out := filepath.Join(t.TempDir(), "out.wav")

	_, err := run(t, "convert", "--end-ms", "10", "--mono", "--rate", "16000", "--mode", "cubic", "--bits", "24", in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	wf, err := audacq.Acquire(data, audacq.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, wf.Channels())
	assert.Equal(t, 16000, wf.FrameRate())
	// 80 frames at 8000 Hz, cubic keeps positions inside the input
	assert.Equal(t, 159, wf.FrameCount())
}

func TestConvert_Float(t *testing.T) {
	t.Parallel()

	in := writeFile(t, "in.wav", audiotest.Float32WAV(8000, 1, []float32{0.125, -0.5, 0.75}))
	out := filepath.Join(t.TempDir(), "out.wav")

	_, err := run(t, "convert", "--float", in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	wf, err := audacq.Acquire(data, audacq.Options{})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.125, -0.5, 0.75}, wf.Samples())
}

func TestConvert_Stdout(t *testing.T) {
	t.Parallel()

	in := writeFile(t, "in.wav", audiotest.RampWAV(8000, 2, 100))

	out, err := run(t, "convert", "--channels", "1", in, "-")
	require.NoError(t, err)

	wf, err := audacq.Acquire([]byte(out), audacq.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, wf.Channels())
	assert.Equal(t, 100, wf.FrameCount())

	_, err = run(t, "convert", "--bits", "24", in, "-")
	assert.Error(t, err)
}

func TestConvert_InvalidOptions(t *testing.T) {
	t.Parallel()

	in := writeFile(t, "in.wav", audiotest.RampWAV(8000, 2, 100))
	out := filepath.Join(t.TempDir(), "out.wav")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown mode", []string{"--mode", "linear"}, audacq.ErrInvalidArguments},
		{"mono of one channel", []string{"--mono", "--channels", "1"}, audacq.ErrInvalidChannelCount},
		{"reversed range", []string{"--start-ms", "5", "--end-ms", "2"}, audacq.ErrInvalidTimeRange},
		{"too many channels", []string{"--channels", "4"}, audacq.ErrInvalidChannelCount},
		{"zero rate", []string{"--rate", "0"}, audacq.ErrInvalidFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"convert"}, tt.args...)
			_, err := run(t, append(args, in, out)...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := run(t, "convert", in)
	assert.Error(t, err)
}

func TestConvert_Env(t *testing.T) {
	t.Setenv("AUDACQ_MONO", "true")
	t.Setenv("AUDACQ_RATE", "4000")

	in := writeFile(t, "in.wav", audiotest.RampWAV(8000, 2, 800))
	out := filepath.Join(t.TempDir(), "out.wav")

	_, err := run(t, "convert", in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	wf, err := audacq.Acquire(data, audacq.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, wf.Channels())
	assert.Equal(t, 4000, wf.FrameRate())
}

func TestBatch(t *testing.T) {
	t.Parallel()

	good := writeFile(t, "good.wav", audiotest.RampWAV(8000, 1, 80))
	bad := writeFile(t, "bad.wav", []byte("RIFF but broken"))

	out, err := run(t, "batch", "--workers", "2", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.ErrorIs(t, err, audacq.ErrDecode)
	assert.Contains(t, err.Error(), bad)

	assert.Contains(t, out, good+": 8000 Hz, 1 channels, 80 frames\n")
	assert.Contains(t, out, bad+": error:")

	out, err = run(t, "batch", good)
	require.NoError(t, err)
	assert.Equal(t, good+": 8000 Hz, 1 channels, 80 frames\n", out)
}
