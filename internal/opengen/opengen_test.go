package opengen

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	var config = DefaultConfig()
	config.Count = 20
	config.Plies = 6
	require.NoError(t, Generate(context.Background(), &buf, config))

	var lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 20)
	var seen = make(map[string]bool)
	for _, line := range lines {
		var option, err = chess.FEN(line)
		require.NoError(t, err, line)
		var game = chess.NewGame(option)
		assert.LessOrEqual(t, abs(Material(game.Position().Board())), config.MaxImbalance)
		assert.False(t, seen[positionKey(line)])
		seen[positionKey(line)] = true
	}
}

func TestGenerateDeterministic(t *testing.T) {
	var config = DefaultConfig()
	config.Count = 5
	var a, b bytes.Buffer
	require.NoError(t, Generate(context.Background(), &a, config))
	require.NoError(t, Generate(context.Background(), &b, config))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateTooFew(t *testing.T) {
	var config = DefaultConfig()
	config.Count = 5
	config.Plies = 0
	var buf bytes.Buffer
	assert.Error(t, Generate(context.Background(), &buf, config))
}

func TestMaterial(t *testing.T) {
	assert.Equal(t, 0, Material(chess.NewGame().Position().Board()))
	var option, err = chess.FEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 5, Material(chess.NewGame(option).Position().Board()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
