// Package runner drives a land-value world without a window: a paced or
// free-running frame loop with per-pass telemetry, and a parallel
// parameter sweep.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"simblock/internal/core"
	"simblock/internal/sims/landvalue"
	"simblock/internal/telemetry"
)

// Options controls a headless run.
type Options struct {
	Frames int // stop after this many frames; 0 runs until ctx is done
	TPS    int // frames per second; 0 runs as fast as possible
}

// Result summarises a finished run.
type Result struct {
	Frames  int
	Passes  int
	Last    telemetry.PassStats
	Elapsed time.Duration
}

// Run steps w until opts.Frames frames have elapsed or ctx is cancelled.
// Every regeneration pass is summarised, logged at debug level, and
// written to rec (which may be nil).
func Run(ctx context.Context, w *landvalue.World, opts Options, rec *telemetry.Recorder, logger *slog.Logger) (Result, error) {
	if opts.Frames <= 0 && ctx.Done() == nil {
		return Result{}, fmt.Errorf("unbounded run needs a cancellable context")
	}
	var pacer *core.FixedStep
	if opts.TPS > 0 {
		pacer = core.NewFixedStep(opts.TPS)
	}

	start := time.Now()
	res := Result{}
	values := make([]float64, 0, w.Size().W*w.Size().H)
	for opts.Frames <= 0 || w.Frames() < opts.Frames {
		if err := ctx.Err(); err != nil {
			break
		}
		if pacer != nil && !pacer.ShouldStep() {
			if err := sleep(ctx, pacer.Remaining()); err != nil {
				break
			}
			continue
		}

		passes := w.Passes()
		w.Step()
		if w.Passes() == passes {
			continue
		}
		stats := Stats(w, values[:0])
		res.Last = stats
		logger.Debug("pass", "stats", stats)
		if err := rec.WritePass(stats); err != nil {
			return res, err
		}
	}
	res.Frames = w.Frames()
	res.Passes = w.Passes()
	res.Elapsed = time.Since(start)
	logger.Info("run finished", "frames", res.Frames, "passes", res.Passes, "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// Stats summarises the world's most recent pass. scratch is reused for
// the value buffer.
func Stats(w *landvalue.World, scratch []float64) telemetry.PassStats {
	last := w.LastPass()
	return telemetry.Summarize(telemetry.Pass{
		Frame:   last.Frame,
		Pass:    last.Pass,
		Changed: last.Changed,
		Raised:  last.Raised,
		Lowered: last.Lowered,
	}, w.Values(scratch), w.LevelCounts())
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
