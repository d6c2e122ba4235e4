package main

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/abtest/pkg/uci"
)

const (
	name   = "RandEngine"
	author = "abtest"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	// stdout belongs to the protocol
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	log.Info().
		Str("VersionName", versionName).
		Str("BuildDate", buildDate).
		Str("GitRevision", gitRevision).
		Str("RuntimeVersion", runtime.Version()).
		Msg(name)

	var eng = NewEngine(time.Now().UnixNano())
	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.VectorOption{Name: uci.OptionFeatureVector, Value: &eng.PieceValues},
			&uci.BoolOption{Name: "Random", Value: &eng.Random},
		},
	)
	protocol.Run(os.Stdin, os.Stdout)
}
