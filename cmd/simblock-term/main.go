package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"simblock/internal/app"
	"simblock/internal/core"
	"simblock/internal/runner"
	"simblock/internal/sims/landvalue"
	"simblock/internal/telemetry"
	"simblock/internal/termview"

	"github.com/integrii/flaggy"
)

type options struct {
	preset      string
	configFile  string
	outDir      string
	frames      int
	tps         int
	seed        int64
	interactive bool
	print       bool
	noColor     bool
	verbose     bool
	sets        []string

	sweep   *flaggy.Subcommand
	axes    []string
	workers int
	top     int
}

func main() {
	opts := parseOptions()
	logger := app.NewLogger(os.Stderr, opts.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if opts.sweep.Used {
		err = sweep(ctx, opts, logger)
	} else {
		err = run(ctx, opts, logger)
	}
	if err != nil {
		logger.Error("simblock-term failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func parseOptions() *options {
	opts := &options{preset: "block", frames: 600, top: 5}

	flaggy.SetName("simblock-term")
	flaggy.SetDescription("Land-value diffusion grid in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.preset, "p", "preset", "Preset to start from ["+strings.Join(landvalue.Presets(), "|")+"]")
	flaggy.String(&opts.configFile, "c", "config", "YAML file merged over the preset")
	flaggy.Int64(&opts.seed, "s", "seed", "Random seed (0 = preset seed, then wall clock)")
	flaggy.StringSlice(&opts.sets, "", "set", "Parameter override in key=value form (repeatable)")
	flaggy.Int(&opts.frames, "f", "frames", "Frames to run headless (0 = until interrupted)")
	flaggy.Int(&opts.tps, "t", "tps", "Frames per second (0 = unpaced headless, 60 interactive)")
	flaggy.String(&opts.outDir, "o", "out", "Directory for passes.csv and config.yaml")
	flaggy.Bool(&opts.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&opts.print, "", "print", "Print the grid after a headless run")
	flaggy.Bool(&opts.noColor, "", "no-color", "Print value digits instead of colored blocks")
	flaggy.Bool(&opts.verbose, "v", "verbose", "Debug logging")

	opts.sweep = flaggy.NewSubcommand("sweep")
	opts.sweep.Description = "Run every combination of parameter values and rank them by mean value"
	opts.sweep.StringSlice(&opts.axes, "a", "axis", "Swept parameter in key=v1,v2 form (repeatable)")
	opts.sweep.Int(&opts.workers, "w", "workers", "Parallel scenario evaluations (0 = CPU count)")
	opts.sweep.Int(&opts.top, "", "top", "Results to print")
	flaggy.AttachSubcommand(opts.sweep, 1)

	flaggy.Parse()
	return opts
}

func run(ctx context.Context, opts *options, logger *slog.Logger) error {
	overrides, err := app.BuildOverrides(opts.configFile, opts.seed, opts.sets)
	if err != nil {
		return err
	}
	sim, err := core.New(opts.preset, overrides)
	if err != nil {
		return err
	}
	world, ok := sim.(*landvalue.World)
	if !ok {
		return fmt.Errorf("sim %q has no grid view", opts.preset)
	}

	if opts.interactive {
		tps := opts.tps
		if tps <= 0 {
			tps = 60
		}
		view, err := termview.New(world, time.Second/time.Duration(tps), opts.seed)
		if err != nil {
			return err
		}
		return view.Run(ctx)
	}

	rec, err := telemetry.NewRecorder(opts.outDir)
	if err != nil {
		return err
	}
	defer rec.Close()
	if err := rec.WriteConfig(world.Config()); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}

	logger.Info("starting headless run", "sim", world.Name(), "frames", opts.frames, "tps", opts.tps, "out", rec.Dir())
	res, err := runner.Run(ctx, world, runner.Options{Frames: opts.frames, TPS: opts.tps}, rec, logger)
	if err != nil {
		return err
	}
	logger.Info("final state", "stats", res.Last)

	if opts.print {
		var b bytes.Buffer
		r := termview.NewRenderer(world.Palette(), !opts.noColor)
		r.Grid(&b, world.Cells(), world.Size().W, 0, 0)
		fmt.Println(b.String())
	}
	return nil
}

func sweep(ctx context.Context, opts *options, logger *slog.Logger) error {
	overrides, err := app.BuildOverrides(opts.configFile, opts.seed, opts.sets)
	if err != nil {
		return err
	}
	overrides["preset"] = opts.preset
	base, err := landvalue.FromMap(overrides)
	if err != nil {
		return err
	}
	axes := make([]runner.Axis, 0, len(opts.axes))
	for _, s := range opts.axes {
		a, err := runner.ParseAxis(s)
		if err != nil {
			return err
		}
		axes = append(axes, a)
	}
	if len(axes) == 0 {
		flaggy.ShowHelpAndExit("sweep needs at least one --axis")
	}

	frames := opts.frames
	if frames <= 0 {
		frames = 600
	}
	if base.Seed == 0 {
		base.Seed = runner.DefaultSeed
	}
	start := time.Now()
	logger.Info("sweeping", "preset", base.Name, "seed", base.Seed, "scenarios", len(runner.Scenarios(axes)), "frames", frames, "workers", opts.workers)
	results, err := runner.Sweep(ctx, base, axes, frames, opts.workers)
	if err != nil {
		return err
	}

	fmt.Printf("Top %d results (elapsed %s):\n", opts.top, time.Since(start).Round(time.Millisecond))
	shown := 0
	for _, res := range results {
		if res.Err != nil {
			logger.Warn("scenario failed", "scenario", res.Scenario.String(), "error", res.Err)
			continue
		}
		if shown == opts.top {
			continue
		}
		shown++
		fmt.Printf("%2d) mean=%.3f std=%.3f median=%.1f levels=%s changed=%d %s\n",
			shown, res.Stats.MeanValue, res.Stats.StdValue, res.Stats.MedianValue, res.Stats.Levels, res.Stats.Changed, res.Scenario)
	}
	return ctx.Err()
}
