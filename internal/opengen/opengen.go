// Package opengen generates balanced opening positions by random play.
package opengen

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Count is the number of distinct positions to write.
	Count int
	// Plies of random moves from the initial position.
	Plies int
	Seed  int64
	// MaxImbalance is the largest material difference kept, in pawns.
	MaxImbalance int
}

func DefaultConfig() Config {
	return Config{
		Count:        1000,
		Plies:        8,
		Seed:         1,
		MaxImbalance: 2,
	}
}

// Generate writes config.Count distinct FENs to w, one per line.
func Generate(
	ctx context.Context,
	w io.Writer,
	config Config,
) error {
	log.Info().Int("count", config.Count).Int("plies", config.Plies).Msg("generate-openings-started")
	defer log.Info().Msg("generate-openings-finished")

	var genCtx, cancel = context.WithCancel(ctx)
	defer cancel()
	g, genCtx := errgroup.WithContext(genCtx)

	var positions = make(chan string, 128)

	g.Go(func() error {
		defer close(positions)
		var rnd = rand.New(rand.NewSource(config.Seed))
		var maxAttempts = 100 * config.Count
		for attempt := 0; attempt < maxAttempts; attempt++ {
			var fen, ok = randomPosition(rnd, config)
			if !ok {
				continue
			}
			select {
			case <-genCtx.Done():
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return nil
			case positions <- fen:
			}
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		var written, err = saveFens(genCtx, w, config.Count, positions)
		if err != nil {
			return err
		}
		if written < config.Count {
			return fmt.Errorf("generated only %v of %v distinct openings", written, config.Count)
		}
		return nil
	})

	return g.Wait()
}

func randomPosition(rnd *rand.Rand, config Config) (string, bool) {
	var game = chess.NewGame()
	for i := 0; i < config.Plies; i++ {
		var moves = game.ValidMoves()
		if len(moves) == 0 {
			return "", false
		}
		if err := game.Move(moves[rnd.Intn(len(moves))]); err != nil {
			return "", false
		}
		if game.Outcome() != chess.NoOutcome {
			return "", false
		}
	}
	var balance = Material(game.Position().Board())
	if balance < -config.MaxImbalance || balance > config.MaxImbalance {
		return "", false
	}
	return game.FEN(), true
}

// Material is White's material minus Black's, in pawns.
func Material(board *chess.Board) int {
	var result = 0
	for _, piece := range board.SquareMap() {
		var v = pieceValue(piece.Type())
		if piece.Color() == chess.Black {
			v = -v
		}
		result += v
	}
	return result
}

func pieceValue(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return 1
	case chess.Knight, chess.Bishop:
		return 3
	case chess.Rook:
		return 5
	case chess.Queen:
		return 9
	}
	return 0
}

func saveFens(ctx context.Context, w io.Writer, count int, positions <-chan string) (int, error) {
	var ticker = time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var totalCount int
	var uniqueCount int
	var repeats = make(map[string]struct{})

	var showProgress = func() {
		log.Info().Int("total", totalCount).Int("unique", uniqueCount).Msg("generate-openings-progress")
	}

LOOP:
	for uniqueCount < count {
		select {
		case <-ctx.Done():
			return uniqueCount, ctx.Err()
		case <-ticker.C:
			showProgress()
		case fen, ok := <-positions:
			if !ok {
				break LOOP
			}
			totalCount++
			var key = positionKey(fen)
			if _, found := repeats[key]; found {
				continue
			}
			repeats[key] = struct{}{}
			uniqueCount++

			if _, err := fmt.Fprintln(w, fen); err != nil {
				return uniqueCount, err
			}
		}
	}

	showProgress()
	return uniqueCount, nil
}

// positionKey drops the move counters.
func positionKey(fen string) string {
	var fields = strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
