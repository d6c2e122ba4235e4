package arena

import (
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
)

func TestClockSpend(t *testing.T) {
	var clock = NewClock(TimeControl{Base: 1000, Increment: 100})
	assert.Equal(t, 1100*time.Millisecond, clock.Budget(chess.White))

	assert.True(t, clock.Spend(chess.White, 300*time.Millisecond))
	assert.Equal(t, 800, clock.Remaining(chess.White))
	assert.Equal(t, 1000, clock.Remaining(chess.Black))

	assert.True(t, clock.Spend(chess.Black, 1100*time.Millisecond))
	assert.Equal(t, 0, clock.Remaining(chess.Black))
}

func TestClockFlagFall(t *testing.T) {
	var clock = NewClock(TimeControl{Base: 500, Increment: 0})
	assert.False(t, clock.Spend(chess.Black, 501*time.Millisecond))
	assert.Equal(t, 500, clock.Remaining(chess.Black))
}
