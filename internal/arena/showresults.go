package arena

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
)

// ShowResults logs every finished game with the running score until results is closed.
func ShowResults(
	ctx context.Context,
	results <-chan GameResult,
) (Summary, error) {
	var summary Summary
	for {
		var res GameResult
		var ok bool
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case res, ok = <-results:
		}
		if !ok {
			return summary, nil
		}
		summary.Add(res)

		var stat = summary.Stat()
		var event = log.Info().Int("game", res.Contest.Number).
			Stringer("outcome", res.Outcome).
			Str("comment", res.Comment).
			Int("wins", summary.AWins).
			Int("losses", summary.BWins).
			Int("draws", summary.Draws).
			Float64("score", round(stat.WinningFraction, 3)).
			Float64("elo", round(stat.EloDifference, 1)).
			Float64("los", round(stat.LOS*100, 1))
		if res.Ratings != nil {
			event = event.
				Float64("ratingA", round(res.Ratings.AfterA, 1)).
				Float64("ratingB", round(res.Ratings.AfterB, 1))
		}
		event.Msg("game-finished")
	}
}

func round(x float64, digits int) float64 {
	var scale = math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}
