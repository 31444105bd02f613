// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ik5/audacq"
	"github.com/ik5/audacq/formats"
	"github.com/ik5/audacq/resample"
)

const (
	VerboseFlag   = "verbose"
	StartFlag     = "start-ms"
	EndFlag       = "end-ms"
	ZeroPadFlag   = "zero-pad"
	RepeatPadFlag = "repeat-pad"
	ChannelsFlag  = "channels"
	MonoFlag      = "mono"
	RateFlag      = "rate"
	ModeFlag      = "mode"
	BitsFlag      = "bits"
	FloatFlag     = "float"
	WorkersFlag   = "workers"
)

func env(name string) []string {
	return []string{"AUDACQ_" + name}
}

// shapeFlags are shared by every command that acquires audio.
func shapeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{Name: StartFlag, Usage: "start of the selection in milliseconds", EnvVars: env("START_MS")},
		&cli.Uint64Flag{Name: EndFlag, Usage: "end of the selection in milliseconds", EnvVars: env("END_MS")},
		&cli.BoolFlag{Name: ZeroPadFlag, Usage: "pad an end past the audio with silence", EnvVars: env("ZERO_PAD")},
		&cli.BoolFlag{Name: RepeatPadFlag, Usage: "pad an end past the audio by looping it", EnvVars: env("REPEAT_PAD")},
		&cli.IntFlag{Name: ChannelsFlag, Aliases: []string{"c"}, Usage: "keep the first `N` channels", EnvVars: env("CHANNELS")},
		&cli.BoolFlag{Name: MonoFlag, Aliases: []string{"m"}, Usage: "average the channels into one", EnvVars: env("MONO")},
		&cli.IntFlag{Name: RateFlag, Aliases: []string{"r"}, Usage: "resample to `HZ`", EnvVars: env("RATE")},
		&cli.StringFlag{Name: ModeFlag, Value: resample.ModeDefault.String(), Usage: "resample mode: default, cubic, lanczos or sinc", EnvVars: env("MODE")},
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "audacq",
		Usage:     "decode, cut, mix and resample audio files",
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: VerboseFlag, Aliases: []string{"v"}, Usage: "log every pipeline stage", EnvVars: env("VERBOSE")},
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print the layout of audio files",
				ArgsUsage: "FILE...",
				Action:    infoAction,
			},
			{
				Name:      "convert",
				Usage:     "acquire an audio file and write it as WAV",
				ArgsUsage: "IN OUT.wav (OUT may be - for stdout)",
				Flags: append(shapeFlags(),
					&cli.IntFlag{Name: BitsFlag, Value: 16, Usage: "integer PCM bit depth: 8, 16, 24 or 32", EnvVars: env("BITS")},
					&cli.BoolFlag{Name: FloatFlag, Usage: "write 32-bit IEEE float samples", EnvVars: env("FLOAT")},
				),
				Action: convertAction,
			},
			{
				Name:      "batch",
				Usage:     "acquire many files in parallel and report each",
				ArgsUsage: "FILE...",
				Flags: append(shapeFlags(),
					&cli.IntFlag{Name: WorkersFlag, Aliases: []string{"w"}, Usage: "parallel decoders, 0 for one per CPU", EnvVars: env("WORKERS")},
				),
				Action: batchAction,
			},
		},
	}
}

func newLogger(cCtx *cli.Context) (*zap.Logger, error) {
	if cCtx.Bool(VerboseFlag) {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

// buildOptions maps the flags that were set to acquisition options.
func buildOptions(cCtx *cli.Context, logger *zap.Logger) (audacq.Options, error) {
	opts := []audacq.Option{audacq.WithLogger(logger)}

	if cCtx.IsSet(StartFlag) {
		opts = append(opts, audacq.WithStartTime(cCtx.Uint64(StartFlag)))
	}
	if cCtx.IsSet(EndFlag) {
		opts = append(opts, audacq.WithEndTime(cCtx.Uint64(EndFlag)))
	}
	if cCtx.Bool(ZeroPadFlag) {
		opts = append(opts, audacq.WithZeroPadEnding())
	}
	if cCtx.Bool(RepeatPadFlag) {
		opts = append(opts, audacq.WithRepeatPadEnding())
	}
	if cCtx.IsSet(ChannelsFlag) {
		opts = append(opts, audacq.WithChannels(cCtx.Int(ChannelsFlag)))
	}
	if cCtx.Bool(MonoFlag) {
		opts = append(opts, audacq.WithMono())
	}
	if cCtx.IsSet(RateFlag) {
		opts = append(opts, audacq.WithFrameRate(cCtx.Int(RateFlag)))
	}

	mode, err := resample.ParseMode(cCtx.String(ModeFlag))
	if err != nil {
		return audacq.Options{}, err
	}
	opts = append(opts, audacq.WithResampleMode(mode))

	return audacq.NewOptions(opts...)
}

func infoAction(cCtx *cli.Context) error {
	if cCtx.NArg() == 0 {
		return errors.New("info needs at least one FILE")
	}

	logger, err := newLogger(cCtx)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts, err := audacq.NewOptions(audacq.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cCtx.App.Writer
	for _, path := range cCtx.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		format, err := formats.Detect(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		wf, err := audacq.Acquire(data, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Fprintf(out, "%s: %s, %d Hz, %d channels, %d frames, %v\n",
			path, format, wf.FrameRate(), wf.Channels(), wf.FrameCount(), wf.Duration())
	}

	return nil
}

func convertAction(cCtx *cli.Context) error {
	if cCtx.NArg() != 2 {
		return errors.New("convert needs IN and OUT")
	}
	in, out := cCtx.Args().Get(0), cCtx.Args().Get(1)

	logger, err := newLogger(cCtx)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts, err := buildOptions(cCtx, logger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	wf, err := audacq.Acquire(data, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if out == "-" {
		if cCtx.Bool(FloatFlag) || cCtx.Int(BitsFlag) != 16 {
			return errors.New("only 16-bit PCM can be written to stdout")
		}
		return wf.WriteWAV16(cCtx.App.Writer)
	}

	var encoded []byte
	if cCtx.Bool(FloatFlag) {
		encoded, err = wf.EncodeFloatWAV()
	} else {
		encoded, err = wf.EncodeWAV(cCtx.Int(BitsFlag))
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return err
	}

	logger.Info("wrote",
		zap.String("path", out),
		zap.Int("frames", wf.FrameCount()),
		zap.Int("channels", wf.Channels()),
		zap.Int("frame_rate", wf.FrameRate()),
	)

	return nil
}

func batchAction(cCtx *cli.Context) error {
	if cCtx.NArg() == 0 {
		return errors.New("batch needs at least one FILE")
	}

	logger, err := newLogger(cCtx)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts, err := buildOptions(cCtx, logger)
	if err != nil {
		return err
	}

	paths := cCtx.Args().Slice()
	inputs := make([]audacq.NamedInput, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, audacq.NamedInput{Name: path, Data: data})
	}

	ctx := cCtx.Context
	if ctx == nil {
		ctx = context.Background()
	}

	results := audacq.AcquireMany(ctx, inputs, opts, cCtx.Int(WorkersFlag))

	out := cCtx.App.Writer
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %d Hz, %d channels, %d frames\n",
			res.Name, res.Waveform.FrameRate(), res.Waveform.Channels(), res.Waveform.FrameCount())
	}

	if err := results.Err(); err != nil {
		return fmt.Errorf("%d of %d files failed: %w", results.Failed(), len(results), err)
	}

	return nil
}
