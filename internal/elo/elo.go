// Package elo updates a pair of competitor ratings after each decided game.
package elo

import (
	"math"
	"sync"
)

// K is the rating dependent step size: 38 far below 1500, 2 far above.
func K(r float64) float64 {
	return 2 + 36/(1+math.Pow(2, (r-1500)/63))
}

// Expected returns the expected score of a player rated ra against rb.
func Expected(ra, rb float64) float64 {
	var qa = math.Pow(10, ra/400)
	var qb = math.Pow(10, rb/400)
	return qa / (qa + qb)
}

type Change struct {
	BeforeA, BeforeB float64
	AfterA, AfterB   float64
}

// Pair holds the ratings of competitors A and B shared by every running game.
type Pair struct {
	mu sync.Mutex
	a  float64
	b  float64
}

func NewPair(a, b float64) *Pair {
	return &Pair{a: a, b: b}
}

// Update applies one game with scores sa and sb from the point of view of A and B.
// The read, compute and write happen in one critical section.
func (p *Pair) Update(sa, sb float64) Change {
	p.mu.Lock()
	defer p.mu.Unlock()

	var a, b = p.a, p.b
	var ea = Expected(a, b)
	var eb = 1 - ea
	p.a = a + K(a)*(sa-ea)
	p.b = b + K(b)*(sb-eb)

	return Change{
		BeforeA: a,
		BeforeB: b,
		AfterA:  p.a,
		AfterB:  p.b,
	}
}

func (p *Pair) Ratings() (a, b float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.a, p.b
}
