package arena

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/abtest/internal/pgn"
)

var errEnough = errors.New("enough openings")

// LoadOpenings reads one opening per line: either a FEN or a short move
// sequence in algebraic notation. Blank lines and // comments are skipped.
// A .pgn file contributes the final position of each game.
// At most n openings are returned, all of them for n <= 0.
func LoadOpenings(path string, n int) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pgn") {
		return loadPgnOpenings(path, n)
	}
	var file, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []string
	var scanner = bufio.NewScanner(file)
	var lineNumber = 0
	for scanner.Scan() {
		lineNumber++
		if n > 0 && len(result) >= n {
			break
		}
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fen, err := ParseOpening(line)
		if err != nil {
			return nil, fmt.Errorf("%v:%v: %w", path, lineNumber, err)
		}
		result = append(result, fen)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Openings normalizes a list of openings to FEN and truncates it to n.
func Openings(lines []string, n int) ([]string, error) {
	var result []string
	for _, line := range lines {
		if n > 0 && len(result) >= n {
			break
		}
		var fen, err = ParseOpening(line)
		if err != nil {
			return nil, err
		}
		result = append(result, fen)
	}
	return result, nil
}

// ParseOpening returns the FEN of an opening given as FEN or as moves from the initial position.
func ParseOpening(opening string) (string, error) {
	opening = strings.TrimSpace(opening)
	if fen, err := chess.FEN(opening); err == nil {
		return chess.NewGame(fen).FEN(), nil
	}
	var game = chess.NewGame()
	for _, token := range strings.Fields(opening) {
		if i := strings.LastIndexByte(token, '.'); i >= 0 {
			token = token[i+1:]
		}
		if token == "" || token == "*" {
			continue
		}
		if err := game.MoveStr(token); err != nil {
			return "", fmt.Errorf("opening %q: %w", opening, err)
		}
	}
	return game.FEN(), nil
}

func loadPgnOpenings(path string, n int) ([]string, error) {
	var result []string
	var err = pgn.WalkPgnFile(path, func(game *chess.Game) error {
		if n > 0 && len(result) >= n {
			return errEnough
		}
		result = append(result, game.Position().String())
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		return nil, err
	}
	return result, nil
}
