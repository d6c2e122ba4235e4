// Package enginetest lets a test binary act as a scriptable UCI engine.
//
// A test package calls Main from TestMain. Path creates a symlink to the
// running test binary whose base name selects the engine behaviour; the
// child process recognises the environment variable and serves UCI on
// stdin/stdout instead of running tests.
package enginetest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/abtest/pkg/uci"
)

const envEngine = "ABTEST_FAKE_ENGINE"

const (
	// First plays a legal move chosen by the FeatureVector option (the first one by default).
	First = "first"
	// Silent completes the handshake and never answers go.
	Silent = "silent"
	// Crash exits as soon as it is asked to move.
	Crash = "crash"
	// Illegal answers every go with a well formed but illegal move.
	Illegal = "illegal"
	// Garbage answers every go with a malformed bestmove token.
	Garbage = "garbage"
	// NoReady exits right after the uci command without ever sending readyok.
	NoReady = "noready"
	// Anonymous answers uci without an id name line.
	Anonymous = "anonymous"
	// Slow waits before answering go with the first legal move.
	Slow = "slow"
	// Mute reads its input and never writes anything.
	Mute = "mute"
)

// SlowDelay is how long a Slow engine thinks.
const SlowDelay = 300 * time.Millisecond

// Main turns the process into a fake engine when started through Path.
func Main() {
	if os.Getenv(envEngine) == "" {
		return
	}
	var mode = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	serve(mode)
	os.Exit(0)
}

// Path returns an executable that behaves according to mode.
func Path(t testing.TB, mode string) string {
	t.Helper()
	var exe, err = os.Executable()
	if err != nil {
		t.Fatal(err)
	}
	var link = filepath.Join(t.TempDir(), mode)
	if err := os.Symlink(exe, link); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envEngine, "1")
	return link
}

func serve(mode string) {
	switch mode {
	case NoReady:
		var buf [64]byte
		os.Stdin.Read(buf[:])
		return
	case Mute:
		io.Copy(io.Discard, os.Stdin)
		return
	case Anonymous:
		os.Stdout.WriteString("id author abtest\nuciok\n")
		io.Copy(io.Discard, os.Stdin)
		return
	}
	var e = &engine{mode: mode}
	var protocol = uci.New("Fake "+mode, "abtest", "", e, []uci.Option{
		&uci.VectorOption{Name: uci.OptionFeatureVector, Value: &e.parameters},
	})
	protocol.Run(os.Stdin, os.Stdout)
}

type engine struct {
	mode       string
	parameters []int32
}

func (e *engine) Clear() {}

func (e *engine) Search(ctx context.Context, game *chess.Game, limits uci.Limits) *chess.Move {
	var moves = game.ValidMoves()
	switch e.mode {
	case Silent:
		<-ctx.Done()
		return nil
	case Crash:
		os.Exit(3)
	case Illegal:
		os.Stdout.WriteString("bestmove a1a1\n")
		<-ctx.Done()
		return nil
	case Garbage:
		os.Stdout.WriteString("bestmove zz\n")
		<-ctx.Done()
		return nil
	case Slow:
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(SlowDelay):
		}
	}
	if len(moves) == 0 {
		return nil
	}
	var index int
	for _, p := range e.parameters {
		index += int(p)
	}
	if index < 0 {
		index = -index
	}
	return moves[index%len(moves)]
}
