package pgn

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/notnil/chess"
)

const Event = "AB test"

// Tags returns the tag pairs of r in export order.
func (r *Record) Tags(date time.Time) []Tag {
	var tags = []Tag{
		{"Event", Event},
		{"Site", "?"},
		{"Date", date.Format("2006.01.02")},
		{"Round", roundString(r.Round)},
		{"White", r.White},
		{"Black", r.Black},
	}
	if r.Ratings != nil {
		tags = append(tags,
			Tag{"WhiteElo", fmt.Sprintf("%.0f", r.Ratings[0])},
			Tag{"BlackElo", fmt.Sprintf("%.0f", r.Ratings[1])})
	}
	tags = append(tags, Tag{"Result", result(r.Game)})
	if r.Opening != "" {
		tags = append(tags, Tag{"FEN", r.Opening}, Tag{"SetUp", "1"})
	}
	if r.Comment != "" {
		tags = append(tags, Tag{"Termination", r.Comment})
	}
	return tags
}

// Write writes r as one PGN game.
func Write(w io.Writer, r *Record, date time.Time) error {
	var sb = &strings.Builder{}
	for _, tag := range r.Tags(date) {
		fmt.Fprintf(sb, "[%v %q]\n", tag.Key, tag.Value)
	}
	sb.WriteString("\n")
	sb.WriteString(wrap(movetext(r.Game), 80))
	sb.WriteString("\n\n")
	var _, err = io.WriteString(w, sb.String())
	return err
}

func movetext(game *chess.Game) string {
	var tokens []string
	var positions = game.Positions()
	var notation = chess.AlgebraicNotation{}
	for i, move := range game.Moves() {
		var pos = positions[i]
		var number = fullMoveNumber(pos)
		if pos.Turn() == chess.White {
			tokens = append(tokens, fmt.Sprintf("%v.", number))
		} else if i == 0 {
			tokens = append(tokens, fmt.Sprintf("%v...", number))
		}
		tokens = append(tokens, notation.Encode(pos, move))
	}
	tokens = append(tokens, result(game))
	return strings.Join(tokens, " ")
}

func fullMoveNumber(pos *chess.Position) int {
	var fields = strings.Fields(pos.String())
	var number = 1
	if len(fields) == 6 {
		fmt.Sscan(fields[5], &number)
	}
	return number
}

func result(game *chess.Game) string {
	switch game.Outcome() {
	case chess.WhiteWon:
		return GameResultWhiteWin
	case chess.BlackWon:
		return GameResultBlackWin
	case chess.Draw:
		return GameResultDraw
	}
	return GameResultNone
}

func roundString(round int) string {
	if round <= 0 {
		return "?"
	}
	return fmt.Sprint(round)
}

func wrap(text string, width int) string {
	var sb = &strings.Builder{}
	var lineLen = 0
	for _, word := range strings.Fields(text) {
		if lineLen != 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		}
		if lineLen != 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
