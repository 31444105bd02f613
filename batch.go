// SPDX-License-Identifier: EPL-2.0

package audacq

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NamedInput is one encoded buffer of a batch.
type NamedInput struct {
	Name string
	Data []byte
}

// NamedResult is the outcome of acquiring one NamedInput.
// Exactly one of Waveform and Err is set.
type NamedResult struct {
	Name     string
	Waveform *Waveform
	Err      error
}

// Results holds one NamedResult per input, in input order.
type Results []NamedResult

// Err combines the failures of the batch, nil when every input succeeded.
func (r Results) Err() error {
	var err error
	for _, res := range r {
		if res.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", res.Name, res.Err))
		}
	}

	return err
}

// Failed returns the number of inputs that could not be acquired.
func (r Results) Failed() int {
	var n int
	for _, res := range r {
		if res.Err != nil {
			n++
		}
	}

	return n
}

// AcquireMany runs Acquire over inputs on up to workers goroutines
// (GOMAXPROCS when workers <= 0). A failing input does not stop the others.
// Once ctx is done, inputs that have not started report ctx.Err().
func AcquireMany(ctx context.Context, inputs []NamedInput, opts Options, workers int) Results {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make(Results, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, in := range inputs {
		results[i].Name = in.Name

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			wf, err := Acquire(in.Data, opts)
			if err != nil {
				opts.log().Debug("acquire failed", zap.String("input", in.Name), zap.Error(err))
				results[i].Err = err
				return nil
			}

			results[i].Waveform = wf
			return nil
		})
	}

	_ = g.Wait()

	return results
}
