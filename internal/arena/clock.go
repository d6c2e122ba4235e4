package arena

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
)

// Clock keeps the remaining time of both sides in milliseconds.
type Clock struct {
	white     int
	black     int
	increment int
}

func NewClock(tc TimeControl) *Clock {
	return &Clock{
		white:     tc.Base,
		black:     tc.Base,
		increment: tc.Increment,
	}
}

func (c *Clock) String() string {
	return fmt.Sprintf("White: %v Black: %v", c.white, c.black)
}

func (c *Clock) Remaining(side chess.Color) int {
	if side == chess.White {
		return c.white
	}
	return c.black
}

// Budget is the longest a side may think without dropping the flag.
func (c *Clock) Budget(side chess.Color) time.Duration {
	return time.Duration(c.Remaining(side)+c.increment) * time.Millisecond
}

// Spend charges elapsed time to side and adds the increment.
// It returns false and leaves the clock unchanged if the flag falls.
func (c *Clock) Spend(side chess.Color, elapsed time.Duration) bool {
	var remaining = c.Remaining(side) + c.increment - int(elapsed/time.Millisecond)
	if remaining < 0 {
		return false
	}
	if side == chess.White {
		c.white = remaining
	} else {
		c.black = remaining
	}
	return true
}
