package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/abtest/internal/opengen"
)

func openingsHandler(args []string) error {
	var config = opengen.DefaultConfig()
	var output string
	var flags = flag.NewFlagSet("openings", flag.ContinueOnError)
	flags.StringVar(&output, "output", "", "path to output file")
	flags.IntVar(&config.Count, "n", config.Count, "number of distinct openings")
	flags.IntVar(&config.Plies, "plies", config.Plies, "random plies from the initial position")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "random seed")
	flags.IntVar(&config.MaxImbalance, "max-imbalance", config.MaxImbalance, "largest material difference kept, in pawns")
	var applyVerbose = verboseFlag(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	applyVerbose()
	if err := requireFlag(flags, output, "output"); err != nil {
		return err
	}
	log.Info().Msgf("%+v", config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	file, err := os.Create(mapPath(output))
	if err != nil {
		return err
	}
	defer file.Close()
	var w = bufio.NewWriter(file)
	if err := opengen.Generate(ctx, w, config); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}
