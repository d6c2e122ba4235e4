package arena

import (
	"sync/atomic"

	"github.com/notnil/chess"
)

// Tally counts finished games. Every game increments exactly one of
// A wins, draws and B wins; decisive games also count per winning color.
type Tally struct {
	aWins     atomic.Int64
	draws     atomic.Int64
	bWins     atomic.Int64
	whiteWins atomic.Int64
	blackWins atomic.Int64
}

func (t *Tally) Add(r GameResult) {
	var score = r.Outcome.Score()
	switch {
	case score.A > score.B:
		t.aWins.Add(1)
	case score.B > score.A:
		t.bWins.Add(1)
	default:
		t.draws.Add(1)
	}
	switch r.Winner() {
	case chess.White:
		t.whiteWins.Add(1)
	case chess.Black:
		t.blackWins.Add(1)
	}
}

type Summary struct {
	AWins     int
	Draws     int
	BWins     int
	WhiteWins int
	BlackWins int
}

func (s Summary) Games() int {
	return s.AWins + s.Draws + s.BWins
}

func (t *Tally) Summary() Summary {
	return Summary{
		AWins:     int(t.aWins.Load()),
		Draws:     int(t.draws.Load()),
		BWins:     int(t.bWins.Load()),
		WhiteWins: int(t.whiteWins.Load()),
		BlackWins: int(t.blackWins.Load()),
	}
}

// Add counts r the same way Tally.Add does.
func (s *Summary) Add(r GameResult) {
	var score = r.Outcome.Score()
	switch {
	case score.A > score.B:
		s.AWins++
	case score.B > score.A:
		s.BWins++
	default:
		s.Draws++
	}
	switch r.Winner() {
	case chess.White:
		s.WhiteWins++
	case chess.Black:
		s.BlackWins++
	}
}
