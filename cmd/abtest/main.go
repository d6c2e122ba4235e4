package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var err = run(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("abtest-failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	var cli = NewCommandHandler()
	cli.Add("play", playHandler)
	cli.Add("tune", tuneHandler)
	cli.Add("openings", openingsHandler)
	cli.Add("version", func(args []string) error {
		fmt.Println("abtest", versionName, buildDate, gitRevision, runtime.Version())
		return nil
	})
	if len(args) == 0 {
		return fmt.Errorf("usage: abtest <%v> [flags]", cli.Names())
	}
	return cli.Execute(args[0], args[1:])
}
