package pgn

import "github.com/notnil/chess"

const (
	GameResultNone     = "*"
	GameResultWhiteWin = "1-0"
	GameResultBlackWin = "0-1"
	GameResultDraw     = "1/2-1/2"
)

type Tag struct {
	Key   string
	Value string
}

// Record is a finished game handed off for export.
type Record struct {
	Game *chess.Game
	// Opening is the starting FEN.
	Opening string
	White   string
	Black   string
	Round   int
	// Comment explains how the game ended.
	Comment string
	// Ratings are White and Black ratings after the game, if tracked.
	Ratings *[2]float64
}
