package arena

import (
	"context"
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/abtest/pkg/uci"
)

// PlayGame plays one contest between two fresh engine processes.
// Forfeits, crashes and (by default) illegal moves end the game; only
// failures that make the match meaningless are returned as errors.
func PlayGame(
	ctx context.Context,
	config GameConfig,
	info Contest,
) (GameResult, error) {

	log.Debug().Int("game", info.Number).Str("opening", info.Opening).
		Bool("aIsWhite", info.AIsWhite).Msg("game-started")

	var game, err = newGame(info.Opening)
	if err != nil {
		return GameResult{}, err
	}

	var white, black = config.A, config.B
	if !info.AIsWhite {
		white, black = black, white
	}

	whiteSession, err := startSession(ctx, config, white, info.Opening)
	if err != nil {
		return GameResult{}, err
	}
	defer whiteSession.Close()

	blackSession, err := startSession(ctx, config, black, info.Opening)
	if err != nil {
		return GameResult{}, err
	}
	defer blackSession.Close()

	var clock = NewClock(config.TimeControl)
	var moves []string
	var result = GameResult{Contest: info, Game: game}

	for {
		if config.Policy.ClaimDraws && game.Outcome() == chess.NoOutcome {
			claimDraw(game)
		}
		if game.Outcome() != chess.NoOutcome {
			result.Moves = moves
			result.Outcome = outcomeFromGame(game, info.AIsWhite)
			result.Comment = game.Method().String()
			return result, nil
		}
		if config.Policy.MaxPlies != 0 && len(moves) >= config.Policy.MaxPlies {
			game.Draw(chess.DrawOffer)
			result.Moves = moves
			result.Outcome = Draw
			result.Comment = "adjudication"
			return result, nil
		}

		var side = game.Position().Turn()
		var session = whiteSession
		if side == chess.Black {
			session = blackSession
		}

		var budget = clock.Budget(side)
		var start = time.Now()
		move, ok, err := session.RequestMove(ctx, uci.MoveRequest{
			Moves:     moves,
			WhiteTime: clock.Remaining(chess.White),
			BlackTime: clock.Remaining(chess.Black),
			Increment: config.TimeControl.Increment,
			Budget:    budget,
		})
		var elapsed = time.Since(start)
		if err != nil {
			return GameResult{}, fmt.Errorf("game %v: %w", info.Number, err)
		}
		if !ok {
			var comment = "no move"
			if elapsed >= budget {
				comment = "time forfeit"
			}
			return forfeit(result, game, side, moves, comment), nil
		}

		var legal = move.Find(game)
		if legal == nil {
			if !config.Policy.IllegalMoveForfeits {
				return GameResult{}, fmt.Errorf("game %v: %w %v", info.Number, ErrIllegalMove, move)
			}
			return forfeit(result, game, side, moves, "illegal move "+move.String()), nil
		}

		if !clock.Spend(side, elapsed) {
			return forfeit(result, game, side, moves, "time forfeit"), nil
		}

		if err := game.Move(legal); err != nil {
			return GameResult{}, fmt.Errorf("game %v: %w", info.Number, err)
		}
		moves = append(moves, move.String())
	}
}

func newGame(opening string) (*chess.Game, error) {
	if opening == "" {
		return chess.NewGame(), nil
	}
	var fen, err = chess.FEN(opening)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", opening, err)
	}
	return chess.NewGame(fen), nil
}

func startSession(
	ctx context.Context,
	config GameConfig,
	competitor Competitor,
	opening string,
) (*uci.Session, error) {
	var opts []uci.StartOption
	if competitor.Parameters != nil {
		opts = append(opts, uci.WithParameters(competitor.Parameters))
	}
	if config.HandshakeTimeout != 0 {
		opts = append(opts, uci.WithHandshakeTimeout(config.HandshakeTimeout))
	}
	return uci.Start(ctx, competitor.Path, opening, opts...)
}

func claimDraw(game *chess.Game) bool {
	for _, method := range game.EligibleDraws() {
		if method == chess.DrawOffer {
			continue
		}
		if game.Draw(method) == nil {
			return true
		}
	}
	return false
}

func outcomeFromGame(game *chess.Game, aIsWhite bool) Outcome {
	switch game.Outcome() {
	case chess.WhiteWon:
		if aIsWhite {
			return DecisiveA
		}
		return DecisiveB
	case chess.BlackWon:
		if aIsWhite {
			return DecisiveB
		}
		return DecisiveA
	}
	return Draw
}

func forfeit(result GameResult, game *chess.Game, side chess.Color, moves []string, comment string) GameResult {
	game.Resign(side)
	var aLost = (side == chess.White) == result.Contest.AIsWhite
	if aLost {
		result.Outcome = ForfeitA
	} else {
		result.Outcome = ForfeitB
	}
	result.Comment = comment
	result.Moves = moves
	return result
}
