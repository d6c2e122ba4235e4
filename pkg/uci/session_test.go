package uci_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChizhovVadim/abtest/internal/enginetest"
	"github.com/ChizhovVadim/abtest/pkg/uci"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestMain(m *testing.M) {
	enginetest.Main()
	os.Exit(m.Run())
}

func TestRequestMove(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.First), startFEN)
	require.NoError(t, err)
	defer s.Close()

	move, ok, err := s.RequestMove(ctx, uci.MoveRequest{
		WhiteTime: 1000,
		BlackTime: 1000,
		Budget:    5 * time.Second,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, move.Find(chess.NewGame()))

	move, ok, err = s.RequestMove(ctx, uci.MoveRequest{
		Moves:     []string{"e2e4"},
		WhiteTime: 1000,
		BlackTime: 1000,
		Budget:    5 * time.Second,
	})
	require.NoError(t, err)
	require.True(t, ok)
	var game = chess.NewGame()
	require.NoError(t, game.Move(uci.MustParseMove("e2e4").Find(game)))
	assert.NotNil(t, move.Find(game), move.String())
}

func TestRequestMoveWithParameters(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.First), startFEN,
		uci.WithParameters([]int32{2, 1}))
	require.NoError(t, err)
	defer s.Close()

	move, ok, err := s.RequestMove(ctx, uci.MoveRequest{Budget: 5 * time.Second})
	require.NoError(t, err)
	require.True(t, ok)
	var want = uci.FromChess(chess.NewGame().ValidMoves()[3])
	assert.Equal(t, want, move)
}

func TestRequestMoveTimeout(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.Silent), startFEN)
	require.NoError(t, err)
	defer s.Close()

	var start = time.Now()
	_, ok, err := s.RequestMove(ctx, uci.MoveRequest{Budget: 200 * time.Millisecond})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRequestMoveEngineCrash(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.Crash), startFEN)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.RequestMove(ctx, uci.MoveRequest{Budget: 10 * time.Second})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequestMoveMalformed(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.Garbage), startFEN)
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.RequestMove(ctx, uci.MoveRequest{Budget: 5 * time.Second})
	assert.ErrorIs(t, err, uci.ErrProtocol)
}

func TestRequestMoveAfterClose(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.First), startFEN)
	require.NoError(t, err)
	s.Close()
	s.Close()

	_, ok, err := s.RequestMove(ctx, uci.MoveRequest{Budget: time.Second})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStartSpawnFailure(t *testing.T) {
	var _, err = uci.Start(context.Background(), filepath.Join(t.TempDir(), "missing"), startFEN)
	assert.ErrorIs(t, err, uci.ErrSpawn)
}

func TestStartNoReady(t *testing.T) {
	var _, err = uci.Start(context.Background(), enginetest.Path(t, enginetest.NoReady), startFEN)
	assert.ErrorIs(t, err, uci.ErrProtocol)
}

func TestStartHandshakeTimeout(t *testing.T) {
	var _, err = uci.Start(context.Background(), enginetest.Path(t, enginetest.Anonymous), startFEN,
		uci.WithHandshakeTimeout(200*time.Millisecond))
	assert.ErrorIs(t, err, uci.ErrProtocol)
}

func TestDiscoverName(t *testing.T) {
	var ctx = context.Background()

	name, ok, err := uci.DiscoverName(ctx, enginetest.Path(t, enginetest.First))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Fake first", name)

	_, ok, err = uci.DiscoverName(ctx, enginetest.Path(t, enginetest.Anonymous))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = uci.DiscoverName(ctx, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, uci.ErrSpawn)
}

func TestDiscoverNameTimeout(t *testing.T) {
	var start = time.Now()
	var _, ok, err = uci.DiscoverName(context.Background(), enginetest.Path(t, enginetest.Mute),
		uci.WithHandshakeTimeout(200*time.Millisecond))
	assert.ErrorIs(t, err, uci.ErrProtocol)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCloseStopsReader(t *testing.T) {
	var ctx = context.Background()
	var s, err = uci.Start(ctx, enginetest.Path(t, enginetest.Slow), startFEN)
	require.NoError(t, err)
	_, _, err = s.RequestMove(ctx, uci.MoveRequest{Budget: 10 * time.Millisecond})
	require.NoError(t, err)

	s.Close()
	select {
	case <-uci.ReaderDone(s):
	default:
		t.Fatal("stdout reader still running after Close")
	}
}
