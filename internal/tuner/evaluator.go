package tuner

import (
	"context"
	"time"

	"github.com/ChizhovVadim/abtest/internal/arena"
)

// Evaluator plays θ⁺ against θ⁻ and returns the tally from the θ⁺ side.
type Evaluator interface {
	Evaluate(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error)
}

// MatchEvaluator plays Rounds bidirectional rounds over Openings between
// two instances of Engine configured with the two parameter vectors.
type MatchEvaluator struct {
	Engine           string
	Openings         []string
	TimeControl      arena.TimeControl
	Jobs             int
	Rounds           int
	Policy           arena.Policy
	HandshakeTimeout time.Duration
}

func (e *MatchEvaluator) Evaluate(
	ctx context.Context,
	plus, minus Vector[int32],
) (arena.Summary, error) {
	var rounds = e.Rounds
	if rounds < 1 {
		rounds = 1
	}
	var openings = make([]string, 0, rounds*len(e.Openings))
	for i := 0; i < rounds; i++ {
		openings = append(openings, e.Openings...)
	}
	return arena.Run(ctx, arena.Config{
		A:                arena.Competitor{Path: e.Engine, Name: "plus", Parameters: plus},
		B:                arena.Competitor{Path: e.Engine, Name: "minus", Parameters: minus},
		TimeControl:      e.TimeControl,
		Jobs:             e.Jobs,
		Policy:           e.Policy,
		HandshakeTimeout: e.HandshakeTimeout,
	}, openings)
}

// Estimate reduces a tally to 2·(wins − losses)/positions, where every
// position was played once with each color.
func Estimate(summary arena.Summary) float64 {
	var positions = summary.Games() / 2
	if positions == 0 {
		return 0
	}
	return 2 * float64(summary.AWins-summary.BWins) / float64(positions)
}
