package main

import (
	"context"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChizhovVadim/abtest/pkg/uci"
)

func gameFromFEN(t *testing.T, fen string) *chess.Game {
	var option, err = chess.FEN(fen)
	require.NoError(t, err)
	return chess.NewGame(option)
}

func TestSearchCapturesQueen(t *testing.T) {
	// White rook on a1 can take an undefended queen on a8.
	var game = gameFromFEN(t, "q6k/8/8/8/8/8/8/R5K1 w - - 0 1")
	var move = NewEngine(1).Search(context.Background(), game, uci.Limits{})
	require.NotNil(t, move)
	assert.Equal(t, "a1a8", uci.FromChess(move).String())
}

func TestSearchFindsMate(t *testing.T) {
	var game = gameFromFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	var move = NewEngine(1).Search(context.Background(), game, uci.Limits{})
	require.NotNil(t, move)
	assert.Equal(t, "a1a8", uci.FromChess(move).String())
}

func TestSearchPieceValuesFromOption(t *testing.T) {
	// The queen can take a knight on c3 or a rook on h4.
	var game = gameFromFEN(t, "k7/8/8/8/3Q3r/2n5/8/K7 w - - 0 1")
	var move = NewEngine(1).Search(context.Background(), game, uci.Limits{})
	require.NotNil(t, move)
	assert.Equal(t, "d4h4", uci.FromChess(move).String())

	var eng = NewEngine(1)
	require.NoError(t, (&uci.VectorOption{Name: uci.OptionFeatureVector, Value: &eng.PieceValues}).Set("100 2000 300 500 900"))
	move = eng.Search(context.Background(), game, uci.Limits{})
	require.NotNil(t, move)
	assert.Equal(t, "d4c3", uci.FromChess(move).String())
}

func TestSearchNoMoves(t *testing.T) {
	var game = gameFromFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Nil(t, NewEngine(1).Search(context.Background(), game, uci.Limits{}))
}
