package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/abtest/internal/arena"
	"github.com/ChizhovVadim/abtest/internal/elo"
	"github.com/ChizhovVadim/abtest/internal/pgn"
	"github.com/ChizhovVadim/abtest/internal/report"
	"github.com/ChizhovVadim/abtest/pkg/uci"
)

type PlayConfig struct {
	EngineA        string
	EngineB        string
	Time           int
	Increment      int
	Openings       string
	Count          int
	Jobs           int
	Unidirectional bool
	EloA           float64
	EloB           float64
	PgnDir         string
	MaxPlies       int
	Strict         bool
	NoClaim        bool
	Handshake      time.Duration
}

func playHandler(args []string) error {
	var config PlayConfig
	var flags = flag.NewFlagSet("play", flag.ContinueOnError)
	flags.StringVar(&config.EngineA, "a", "", "path to engine A")
	flags.StringVar(&config.EngineB, "b", "", "path to engine B")
	flags.IntVar(&config.Time, "time", 10000, "base time per game, ms")
	flags.IntVar(&config.Increment, "inc", 100, "increment per move, ms")
	flags.StringVar(&config.Openings, "openings", "", "file with one FEN or move sequence per line, or a PGN file")
	flags.IntVar(&config.Count, "n", 0, "number of openings to play (0 = all)")
	flags.IntVar(&config.Jobs, "jobs", runtime.NumCPU()/2, "number of games played at once")
	flags.BoolVar(&config.Unidirectional, "biased", false, "play every opening once, A as White")
	flags.Float64Var(&config.EloA, "elo-a", 0, "starting rating of A (ratings are tracked when both are set)")
	flags.Float64Var(&config.EloB, "elo-b", 0, "starting rating of B")
	flags.StringVar(&config.PgnDir, "pgn", "", "directory to save games in")
	flags.IntVar(&config.MaxPlies, "max-plies", 0, "adjudicate a draw after that many plies (0 = never)")
	flags.BoolVar(&config.Strict, "strict", false, "abort the match on an illegal move instead of forfeiting")
	flags.BoolVar(&config.NoClaim, "no-claim", false, "do not end games on claimable draws")
	flags.DurationVar(&config.Handshake, "handshake-timeout", 0, "limit on engine startup (0 = none)")
	var applyVerbose = verboseFlag(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	applyVerbose()
	if err := requireFlag(flags, config.EngineA, "a"); err != nil {
		return err
	}
	if err := requireFlag(flags, config.EngineB, "b"); err != nil {
		return err
	}
	config.EngineA = mapPath(config.EngineA)
	config.EngineB = mapPath(config.EngineB)
	log.Info().Msgf("%+v", config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return play(ctx, config)
}

func play(ctx context.Context, config PlayConfig) error {
	openings, err := loadOpenings(config.Openings, config.Count)
	if err != nil {
		return err
	}

	a, err := newCompetitor(ctx, config.EngineA, config.Handshake)
	if err != nil {
		return err
	}
	b, err := newCompetitor(ctx, config.EngineB, config.Handshake)
	if err != nil {
		return err
	}

	var policy = arena.DefaultPolicy()
	policy.IllegalMoveForfeits = !config.Strict
	policy.ClaimDraws = !config.NoClaim
	policy.MaxPlies = config.MaxPlies

	var results = make(chan arena.GameResult, 16)
	var arenaConfig = arena.Config{
		A:                a,
		B:                b,
		TimeControl:      arena.TimeControl{Base: config.Time, Increment: config.Increment},
		Jobs:             config.Jobs,
		Unidirectional:   config.Unidirectional,
		Policy:           policy,
		HandshakeTimeout: config.Handshake,
		Results:          results,
	}
	if config.EloA != 0 && config.EloB != 0 {
		arenaConfig.Ratings = elo.NewPair(config.EloA, config.EloB)
	}
	if config.PgnDir != "" {
		recorder, err := pgn.NewDirRecorder(mapPath(config.PgnDir))
		if err != nil {
			return err
		}
		arenaConfig.Recorder = recorder
	}

	var summary arena.Summary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(results)
		var err error
		summary, err = arena.Run(ctx, arenaConfig, openings)
		return err
	})
	g.Go(func() error {
		var _, err = arena.ShowResults(ctx, results)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if arenaConfig.Ratings != nil {
		var ra, rb = arenaConfig.Ratings.Ratings()
		log.Info().Float64("ratingA", ra).Float64("ratingB", rb).Msg("final-ratings")
	}
	return report.NewPrinter(os.Stdout).Print(a.Name, b.Name, summary)
}

// defaultDiscoverTimeout applies to name discovery when no handshake timeout is set.
const defaultDiscoverTimeout = 10 * time.Second

func newCompetitor(ctx context.Context, path string, timeout time.Duration) (arena.Competitor, error) {
	if timeout <= 0 {
		timeout = defaultDiscoverTimeout
	}
	var name, ok, err = uci.DiscoverName(ctx, path, uci.WithHandshakeTimeout(timeout))
	if err != nil {
		return arena.Competitor{}, err
	}
	if !ok {
		name = path
	}
	log.Info().Str("path", path).Str("name", name).Msg("engine-found")
	return arena.Competitor{Path: path, Name: name}, nil
}
