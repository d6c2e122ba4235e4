package arena

import (
	"errors"
	"time"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/abtest/internal/elo"
	"github.com/ChizhovVadim/abtest/internal/pgn"
)

var ErrIllegalMove = errors.New("arena: illegal move")

// Competitor is one side of a match. Name is informational.
type Competitor struct {
	Path string
	Name string
	// Parameters are sent with setoption before the game when not nil.
	Parameters []int32
}

// TimeControl is a base time and increment per move, in milliseconds.
type TimeControl struct {
	Base      int
	Increment int
}

// Policy controls how lenient the referee is.
type Policy struct {
	// IllegalMoveForfeits loses the game for an illegal move; otherwise it is an ErrIllegalMove error.
	IllegalMoveForfeits bool
	// ClaimDraws ends the game as soon as a draw can be claimed.
	ClaimDraws bool
	// MaxPlies adjudicates a draw after that many plies. Zero means no limit.
	MaxPlies int
}

func DefaultPolicy() Policy {
	return Policy{
		IllegalMoveForfeits: true,
		ClaimDraws:          true,
	}
}

type GameConfig struct {
	A, B             Competitor
	TimeControl      TimeControl
	Policy           Policy
	HandshakeTimeout time.Duration
}

// Contest is one game of a match: an opening and a color assignment.
type Contest struct {
	Opening  string
	AIsWhite bool
	Number   int
}

type Outcome int

const (
	Draw Outcome = iota
	DecisiveA
	DecisiveB
	ForfeitA
	ForfeitB
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case DecisiveA:
		return "A wins"
	case DecisiveB:
		return "B wins"
	case ForfeitA:
		return "A forfeits"
	case ForfeitB:
		return "B forfeits"
	}
	return "unknown"
}

// Score is the result of one game from the point of view of each competitor.
type Score struct {
	A, B float64
}

func (o Outcome) Score() Score {
	switch o {
	case DecisiveA, ForfeitB:
		return Score{A: 1, B: 0}
	case DecisiveB, ForfeitA:
		return Score{A: 0, B: 1}
	}
	return Score{A: 0.5, B: 0.5}
}

type GameResult struct {
	Contest Contest
	Outcome Outcome
	Comment string
	Game    *chess.Game
	// Moves in coordinate notation.
	Moves []string
	// Ratings is set when ratings are tracked.
	Ratings *elo.Change
}

// Winner returns the color that won, or chess.NoColor for a draw.
func (r GameResult) Winner() chess.Color {
	var score = r.Outcome.Score()
	if score.A == score.B {
		return chess.NoColor
	}
	if (score.A > score.B) == r.Contest.AIsWhite {
		return chess.White
	}
	return chess.Black
}

// Recorder receives every finished game, e.g. to save it as PGN.
type Recorder interface {
	Record(record pgn.Record) error
}
