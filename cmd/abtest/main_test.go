package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChizhovVadim/abtest/internal/enginetest"
	"github.com/ChizhovVadim/abtest/internal/tuner"
	"github.com/ChizhovVadim/abtest/pkg/uci"
)

func TestMain(m *testing.M) {
	enginetest.Main()
	os.Exit(m.Run())
}

func TestRunUnknownCommand(t *testing.T) {
	assert.Error(t, run(nil))
	assert.Error(t, run([]string{"fly"}))
}

func TestPlayRequiresEngines(t *testing.T) {
	assert.Error(t, run([]string{"play", "-a", "x"}))
}

func TestPlayMuteEngineFails(t *testing.T) {
	var path = enginetest.Path(t, enginetest.Mute)
	var err = play(context.Background(), PlayConfig{
		EngineA:   path,
		EngineB:   path,
		Time:      1000,
		Count:     1,
		Jobs:      1,
		Handshake: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, uci.ErrProtocol)
}

func TestPlay(t *testing.T) {
	var path = enginetest.Path(t, enginetest.First)
	var pgnDir = filepath.Join(t.TempDir(), "games")
	var err = play(context.Background(), PlayConfig{
		EngineA:   path,
		EngineB:   path,
		Time:      60000,
		Increment: 100,
		Count:     2,
		Jobs:      2,
		EloA:      1500,
		EloB:      1500,
		PgnDir:    pgnDir,
		MaxPlies:  10,
	})
	require.NoError(t, err)

	var files, _ = filepath.Glob(filepath.Join(pgnDir, "*.pgn"))
	assert.Len(t, files, 4)
}

func TestTune(t *testing.T) {
	var dir = t.TempDir()
	var params = filepath.Join(dir, "start.int")
	require.NoError(t, tuner.Vector[int32]{1, 2, 3}.WriteFile(params))

	var err = tune(context.Background(), TuneConfig{
		Engine:     enginetest.Path(t, enginetest.First),
		Params:     params,
		Resume:     true,
		Count:      1,
		Iterations: 2,
		Jobs:       2,
		Seed:       5,
		Time:       60000,
		Increment:  100,
		Rounds:     1,
		MaxPlies:   6,
		OutDir:     filepath.Join(dir, "out"),
	})
	require.NoError(t, err)

	snapshots, err := filepath.Glob(filepath.Join(dir, "out", "theta-*.flt"))
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
	theta, err := tuner.ReadVectorFile[int32](filepath.Join(dir, "out", tuner.ThetaIntFile))
	require.NoError(t, err)
	assert.Len(t, theta, 3)
}

func TestOpenings(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "openings.txt")
	require.NoError(t, run([]string{"openings", "-output", path, "-n", "10"}))

	var openings, err = loadOpenings(path, 0)
	require.NoError(t, err)
	assert.Len(t, openings, 10)
}
