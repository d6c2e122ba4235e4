package arena

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/abtest/internal/elo"
	"github.com/ChizhovVadim/abtest/internal/pgn"
)

type Config struct {
	A, B        Competitor
	TimeControl TimeControl
	// Jobs is the number of games played at once.
	Jobs int
	// Unidirectional plays every opening once, with A as White.
	Unidirectional   bool
	Policy           Policy
	HandshakeTimeout time.Duration
	// Ratings is updated after every game when not nil.
	Ratings  *elo.Pair
	Recorder Recorder
	// Results receives every finished game when not nil.
	Results chan<- GameResult
}

func (c *Config) gameConfig() GameConfig {
	return GameConfig{
		A:                c.A,
		B:                c.B,
		TimeControl:      c.TimeControl,
		Policy:           c.Policy,
		HandshakeTimeout: c.HandshakeTimeout,
	}
}

// Run plays every opening with A as White and, unless unidirectional,
// again with colors reversed. It returns after all games have finished.
func Run(
	ctx context.Context,
	config Config,
	openings []string,
) (Summary, error) {
	log.Info().Int("openings", len(openings)).Int("jobs", config.Jobs).
		Int("NumCPU", runtime.NumCPU()).Msg("arena-started")

	var tally = &Tally{}
	var scheduler = NewScheduler(ctx, config.Jobs)
	var gameConfig = config.gameConfig()
	var gameNumber = 0

	var submit = func(opening string, aIsWhite bool) error {
		gameNumber++
		var info = Contest{Opening: opening, AIsWhite: aIsWhite, Number: gameNumber}
		return scheduler.Submit(func(ctx context.Context) error {
			return playContest(ctx, &config, gameConfig, info, tally)
		})
	}

	var submitErr error
	for _, opening := range openings {
		submitErr = submit(opening, true)
		if submitErr != nil {
			break
		}
		if config.Unidirectional {
			continue
		}
		submitErr = submit(opening, false)
		if submitErr != nil {
			break
		}
	}

	var err = scheduler.Wait()
	if err == nil {
		err = submitErr
	}
	var summary = tally.Summary()
	if err != nil {
		return summary, err
	}

	log.Info().Int("games", summary.Games()).Int("maxInFlight", scheduler.MaxInFlight()).
		Msg("arena-finished")
	return summary, nil
}

func playContest(
	ctx context.Context,
	config *Config,
	gameConfig GameConfig,
	info Contest,
	tally *Tally,
) error {
	var res, err = PlayGame(ctx, gameConfig, info)
	if err != nil {
		return err
	}
	tally.Add(res)

	if config.Ratings != nil {
		var score = res.Outcome.Score()
		var change = config.Ratings.Update(score.A, score.B)
		res.Ratings = &change
	}

	log.Debug().Int("game", info.Number).Stringer("outcome", res.Outcome).
		Str("comment", res.Comment).Int("plies", len(res.Moves)).Msg("contest-finished")

	if config.Recorder != nil {
		if err := config.Recorder.Record(makeRecord(config, res)); err != nil {
			return err
		}
	}

	if config.Results != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case config.Results <- res:
		}
	}
	return nil
}

func makeRecord(config *Config, res GameResult) pgn.Record {
	var white, black = config.A, config.B
	if !res.Contest.AIsWhite {
		white, black = black, white
	}
	var record = pgn.Record{
		Game:    res.Game,
		Opening: res.Contest.Opening,
		White:   displayName(white),
		Black:   displayName(black),
		Round:   res.Contest.Number,
		Comment: res.Comment,
	}
	if res.Ratings != nil {
		var whiteElo, blackElo = res.Ratings.AfterA, res.Ratings.AfterB
		if !res.Contest.AIsWhite {
			whiteElo, blackElo = blackElo, whiteElo
		}
		record.Ratings = &[2]float64{whiteElo, blackElo}
	}
	return record
}

func displayName(c Competitor) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Path
}
