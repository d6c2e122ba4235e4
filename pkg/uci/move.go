package uci

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Move is a move in coordinate notation: e2e4, e7e8q.
type Move struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: bad move %q", ErrProtocol, s)
	}
	var from, okFrom = parseSquare(s[0:2])
	var to, okTo = parseSquare(s[2:4])
	if !okFrom || !okTo {
		return Move{}, fmt.Errorf("%w: bad move %q", ErrProtocol, s)
	}
	var promo = chess.NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = chess.Queen
		case 'r':
			promo = chess.Rook
		case 'b':
			promo = chess.Bishop
		case 'n':
			promo = chess.Knight
		default:
			return Move{}, fmt.Errorf("%w: bad promotion %q", ErrProtocol, s)
		}
	}
	return Move{From: from, To: to, Promo: promo}, nil
}

// MustParseMove is ParseMove for notation that is known to be well formed.
func MustParseMove(s string) Move {
	var m, err = ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Move) String() string {
	var s = squareName(m.From) + squareName(m.To)
	switch m.Promo {
	case chess.Queen:
		s += "q"
	case chess.Rook:
		s += "r"
	case chess.Bishop:
		s += "b"
	case chess.Knight:
		s += "n"
	}
	return s
}

// Find returns the legal move of the game matching m, or nil.
func (m Move) Find(game *chess.Game) *chess.Move {
	for _, legal := range game.ValidMoves() {
		if legal.S1() == m.From && legal.S2() == m.To && legal.Promo() == m.Promo {
			return legal
		}
	}
	return nil
}

// FromChess converts a move of the rules library.
func FromChess(m *chess.Move) Move {
	return Move{From: m.S1(), To: m.S2(), Promo: m.Promo()}
}

func parseSquare(s string) (chess.Square, bool) {
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return chess.NoSquare, false
	}
	return chess.Square(rank*8 + file), true
}

func squareName(sq chess.Square) string {
	var file = fileNames[int(sq)%8]
	var rank = rankNames[int(sq)/8]
	return string(file) + string(rank)
}
