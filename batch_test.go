// SPDX-License-Identifier: EPL-2.0

package audacq

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/ik5/audacq/internal/audiotest"
)

func batchInputs() []NamedInput {
	return []NamedInput{
		{Name: "a.wav", Data: audiotest.RampWAV(8000, 1, 100)},
		{Name: "garbage", Data: []byte("this is not audio")},
		{Name: "b.wav", Data: audiotest.RampWAV(16000, 2, 300)},
		{Name: "empty", Data: nil},
		{Name: "c.wav", Data: audiotest.SineWAV(22050, 1, 50, 440)},
	}
}

func TestAcquireMany(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 2, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()

			inputs := batchInputs()
			results := AcquireMany(context.Background(), inputs, Options{}, workers)
			require.Len(t, results, len(inputs))

			for i, res := range results {
				assert.Equal(t, inputs[i].Name, res.Name)
			}

			wantFrames := map[string]int{"a.wav": 100, "b.wav": 300, "c.wav": 50}
			for _, res := range results {
				frames, ok := wantFrames[res.Name]
				if !ok {
					assert.Nil(t, res.Waveform, res.Name)
					assert.ErrorIs(t, res.Err, ErrDecode, res.Name)
					continue
				}
				require.NoError(t, res.Err, res.Name)
				assert.Equal(t, frames, res.Waveform.FrameCount(), res.Name)
			}

			assert.Equal(t, 2, results.Failed())

			err := results.Err()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
			assert.Len(t, multierr.Errors(err), 2)
			assert.Contains(t, err.Error(), "garbage")
			assert.Contains(t, err.Error(), "empty")
		})
	}
}

func TestAcquireMany_AllSucceed(t *testing.T) {
	t.Parallel()

	inputs := []NamedInput{
		{Name: "one", Data: audiotest.RampWAV(8000, 2, 80)},
		{Name: "two", Data: audiotest.RampWAV(8000, 2, 160)},
	}

	results := AcquireMany(context.Background(), inputs, mustOptions(t, WithMono(), WithFrameRate(16000)), 2)
	require.NoError(t, results.Err())
	assert.Zero(t, results.Failed())

	for _, res := range results {
		assert.Equal(t, 1, res.Waveform.Channels())
		assert.Equal(t, 16000, res.Waveform.FrameRate())
	}
}

func TestAcquireMany_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := AcquireMany(ctx, batchInputs(), Options{}, 2)
	require.Len(t, results, 5)

	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled, res.Name)
		assert.Nil(t, res.Waveform, res.Name)
	}
	assert.Equal(t, 5, results.Failed())
}

func TestAcquireMany_Empty(t *testing.T) {
	t.Parallel()

	results := AcquireMany(context.Background(), nil, Options{}, 4)
	assert.Empty(t, results)
	assert.NoError(t, results.Err())
}
