// Package report prints the final match summary.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ChizhovVadim/abtest/internal/arena"
)

const DefaultWidth = 60

type Printer struct {
	out   *termenv.Output
	Width int
}

// NewPrinter detects color support of w. Use termenv.Ascii to disable colors.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{
		out:   termenv.NewOutput(w, opts...),
		Width: DefaultWidth,
	}
}

// Bar splits the width between A wins, draws and A losses.
// Wins and draws are rounded; losses take the remainder.
func Bar(s arena.Summary, width int) (wins, draws, losses int) {
	var games = s.Games()
	if games == 0 || width <= 0 {
		return 0, 0, 0
	}
	var scale = float64(width) / float64(games)
	wins = int(math.Round(float64(s.AWins) * scale))
	draws = int(math.Round(float64(s.Draws) * scale))
	if wins+draws > width {
		draws = width - wins
	}
	losses = width - wins - draws
	return
}

func (p *Printer) Print(nameA, nameB string, s arena.Summary) error {
	var stat = s.Stat()
	var wins, draws, losses = Bar(s, p.Width)

	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "%v vs %v: %v games\n", nameA, nameB, s.Games())
	sb.WriteString(p.out.String(strings.Repeat("█", wins)).Foreground(p.out.Color("2")).String())
	sb.WriteString(p.out.String(strings.Repeat("█", draws)).Foreground(p.out.Color("8")).String())
	sb.WriteString(p.out.String(strings.Repeat("█", losses)).Foreground(p.out.Color("1")).String())
	sb.WriteString("\n")
	fmt.Fprintf(sb, "+%v =%v -%v  [%.3f]  White %v Black %v\n",
		s.AWins, s.Draws, s.BWins, stat.WinningFraction, s.WhiteWins, s.BlackWins)
	fmt.Fprintf(sb, "Elo difference: %.1f, LOS: %.1f %%\n", stat.EloDifference, stat.LOS*100)

	var _, err = io.WriteString(p.out, sb.String())
	return err
}
