package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/layer"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/scenefile"
	"github.com/gogpu/motion/timeline"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <scene>",
	Short: "Draw frames of a scene and print one command summary per frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().Int64("from", 0, "first sampled time in microseconds")
	sampleCmd.Flags().Int64("to", -1, "end time in microseconds, exclusive (default: scene duration)")
	sampleCmd.Flags().Int64("step", 1, "frames between samples")
	sampleCmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "concurrent sampling workers")
	sampleCmd.Flags().String("sink", "commands", "recording sink")
	_ = viper.BindPFlag("step", sampleCmd.Flags().Lookup("step"))
	_ = viper.BindPFlag("workers", sampleCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("sink", sampleCmd.Flags().Lookup("sink"))
	rootCmd.AddCommand(sampleCmd)
}

// sampleOptions selects the frames to sample. Times are in microseconds.
type sampleOptions struct {
	From, To int64
	Step     int64
	Workers  int
	Sink     string
	// Build is passed to every scenefile.Build.
	Build []scenefile.BuildOption
}

func runSample(cmd *cobra.Command, args []string) error {
	doc, err := scenefile.Load(args[0])
	if err != nil {
		return err
	}
	from, _ := cmd.Flags().GetInt64("from")
	to, _ := cmd.Flags().GetInt64("to")
	opts := sampleOptions{
		From:    from,
		To:      to,
		Step:    viper.GetInt64("step"),
		Workers: viper.GetInt("workers"),
		Sink:    viper.GetString("sink"),
		Build:   buildOptions(args[0]),
	}

	lines, err := sampleFrames(cmd.Context(), doc, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// sampleFrames draws the selected frames of doc at the root frame rate and
// returns one line per frame in frame order. Frames are split into
// contiguous runs, one per worker; each worker builds its own tree.
func sampleFrames(ctx context.Context, doc *scenefile.Document, opts sampleOptions) ([]string, error) {
	if opts.Step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", opts.Step)
	}
	if !recording.IsRegistered(opts.Sink) {
		return nil, fmt.Errorf("unknown sink %q (have %v)", opts.Sink, recording.Sinks())
	}

	first, err := scenefile.Build(doc, opts.Build...)
	if err != nil {
		return nil, err
	}
	rate := first.FrameRate()
	to := opts.To
	if to < 0 {
		to = first.Duration()
	}
	first.Release()

	var frames []timeline.Frame
	for f := timeline.TimeToFrame(max(opts.From, 0), rate); timeline.FrameToTime(f, rate) < to; f += opts.Step {
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		return nil, nil
	}

	workers := min(max(opts.Workers, 1), len(frames))
	chunk := (len(frames) + workers - 1) / workers
	lines := make([]string, len(frames))

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(frames); start += chunk {
		end := min(start+chunk, len(frames))
		g.Go(func() error {
			root, err := scenefile.Build(doc, opts.Build...)
			if err != nil {
				return err
			}
			defer root.Release()
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				line, err := sampleFrame(root, frames[i], rate, opts.Sink)
				if err != nil {
					return err
				}
				lines[i] = line
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	motion.Logger().Debug("frames sampled", "frames", len(frames), "workers", workers, "rate", rate)
	return lines, nil
}

func sampleFrame(root *layer.Composition, frame timeline.Frame, rate float64, sink string) (string, error) {
	rec, err := recording.New(sink)
	if err != nil {
		return "", err
	}
	timeUS := timeline.FrameToTime(frame, rate)
	root.SetCurrentTime(timeUS)
	layer.Draw(root, rec)

	summary := "drawn"
	if cr, ok := rec.(*recording.CommandRecorder); ok {
		summary = cr.Finish().Summary()
	}
	return fmt.Sprintf("frame=%d time=%d %s", frame, timeUS, summary), nil
}
