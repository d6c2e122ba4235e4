package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/abtest/internal/arena"
	"github.com/ChizhovVadim/abtest/internal/tuner"
)

type TuneConfig struct {
	Engine     string
	Params     string
	Resume     bool
	Openings   string
	Count      int
	Iterations int
	Jobs       int
	Seed       uint
	Time       int
	Increment  int
	Rounds     int
	MaxPlies   int
	OutDir     string
}

func tuneHandler(args []string) error {
	var config TuneConfig
	var flags = flag.NewFlagSet("tune", flag.ContinueOnError)
	flags.StringVar(&config.Engine, "engine", "", "path to the engine being tuned")
	flags.StringVar(&config.Params, "params", "", "starting parameters, little-endian float32")
	flags.BoolVar(&config.Resume, "resume", false, "starting parameters are little-endian int32 (e.g. theta.int)")
	flags.StringVar(&config.Openings, "openings", "", "file with one FEN or move sequence per line, or a PGN file")
	flags.IntVar(&config.Count, "n", 0, "number of openings per round (0 = all)")
	flags.IntVar(&config.Iterations, "iterations", 100, "number of SPSA iterations")
	flags.IntVar(&config.Jobs, "jobs", runtime.NumCPU()/2, "number of games played at once")
	flags.UintVar(&config.Seed, "seed", 1, "perturbation seed")
	flags.IntVar(&config.Time, "time", 2000, "base time per game, ms")
	flags.IntVar(&config.Increment, "inc", 20, "increment per move, ms")
	flags.IntVar(&config.Rounds, "rounds", 2, "bidirectional rounds per iteration")
	flags.IntVar(&config.MaxPlies, "max-plies", 0, "adjudicate a draw after that many plies (0 = never)")
	flags.StringVar(&config.OutDir, "out", ".", "directory for theta.flt, theta.int and snapshots")
	var applyVerbose = verboseFlag(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	applyVerbose()
	if err := requireFlag(flags, config.Engine, "engine"); err != nil {
		return err
	}
	if err := requireFlag(flags, config.Params, "params"); err != nil {
		return err
	}
	config.Engine = mapPath(config.Engine)
	log.Info().Msgf("%+v", config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tune(ctx, config)
}

func tune(ctx context.Context, config TuneConfig) error {
	theta, err := loadTheta(mapPath(config.Params), config.Resume)
	if err != nil {
		return err
	}
	openings, err := loadOpenings(config.Openings, config.Count)
	if err != nil {
		return err
	}

	store, err := tuner.OpenStore(mapPath(config.OutDir))
	if err != nil {
		return err
	}
	defer store.Close()

	var policy = arena.DefaultPolicy()
	policy.MaxPlies = config.MaxPlies

	theta, err = tuner.Run(ctx, tuner.Config{
		Iterations: config.Iterations,
		Seed:       uint32(config.Seed),
		Store:      store,
		Evaluator: &tuner.MatchEvaluator{
			Engine:      config.Engine,
			Openings:    openings,
			TimeControl: arena.TimeControl{Base: config.Time, Increment: config.Increment},
			Jobs:        config.Jobs,
			Rounds:      config.Rounds,
			Policy:      policy,
		},
	}, theta)
	if err != nil {
		return err
	}
	log.Info().Interface("theta", tuner.Round(theta)).Str("dir", store.Dir).Msg("tune-finished")
	return nil
}

func loadTheta(path string, resume bool) (tuner.Vector[float32], error) {
	if resume {
		var v, err = tuner.ReadVectorFile[int32](path)
		if err != nil {
			return nil, err
		}
		return tuner.ToFloat(v), nil
	}
	return tuner.ReadVectorFile[float32](path)
}
