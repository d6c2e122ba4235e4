package pgn

import (
	"os"

	"github.com/notnil/chess"
)

// WalkPgnFile calls onGame for every game of a PGN file.
func WalkPgnFile(
	filepath string,
	onGame func(*chess.Game) error,
) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	var scanner = chess.NewScanner(file)
	for scanner.Scan() {
		if err := onGame(scanner.Next()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
