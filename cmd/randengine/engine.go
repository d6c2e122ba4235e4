package main

import (
	"context"
	"math/rand"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/abtest/pkg/uci"
)

// Engine picks the move that wins the most material by its piece values,
// breaking ties at random.
type Engine struct {
	// PieceValues of pawn, knight, bishop, rook and queen; missing ones use defaults.
	PieceValues []int32
	// Random ignores material entirely.
	Random bool
	rnd    *rand.Rand
}

var defaultPieceValues = []int32{100, 300, 300, 500, 900}

const mateScore = 100000

func NewEngine(seed int64) *Engine {
	return &Engine{
		PieceValues: append([]int32(nil), defaultPieceValues...),
		rnd:         rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) Clear() {}

func (e *Engine) Search(ctx context.Context, game *chess.Game, limits uci.Limits) *chess.Move {
	var moves = game.ValidMoves()
	if len(moves) == 0 {
		return nil
	}
	if e.Random {
		return moves[e.rnd.Intn(len(moves))]
	}

	var best []*chess.Move
	var bestScore = -2 * mateScore
	for _, move := range moves {
		if ctx.Err() != nil {
			break
		}
		var score = e.scoreMove(game, move)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, move)
		}
	}
	if len(best) == 0 {
		return moves[e.rnd.Intn(len(moves))]
	}
	return best[e.rnd.Intn(len(best))]
}

// scoreMove is the material gained by move minus the best reply capture.
func (e *Engine) scoreMove(game *chess.Game, move *chess.Move) int {
	var pos = game.Position()
	var gain = e.pieceValue(pos.Board().Piece(move.S2()).Type())
	if move.Promo() != chess.NoPieceType {
		gain += e.pieceValue(move.Promo()) - e.pieceValue(chess.Pawn)
	}

	var child = game.Clone()
	if err := child.Move(move); err != nil {
		return -2 * mateScore
	}
	switch child.Method() {
	case chess.Checkmate:
		return mateScore
	case chess.Stalemate:
		return 0
	}

	var childPos = child.Position()
	var threat = 0
	for _, reply := range child.ValidMoves() {
		var v = e.pieceValue(childPos.Board().Piece(reply.S2()).Type())
		if v > threat {
			threat = v
		}
	}
	return gain - threat
}

func (e *Engine) pieceValue(pt chess.PieceType) int {
	var index = -1
	switch pt {
	case chess.Pawn:
		index = 0
	case chess.Knight:
		index = 1
	case chess.Bishop:
		index = 2
	case chess.Rook:
		index = 3
	case chess.Queen:
		index = 4
	}
	if index < 0 {
		return 0
	}
	if index < len(e.PieceValues) {
		return int(e.PieceValues[index])
	}
	return int(defaultPieceValues[index])
}
