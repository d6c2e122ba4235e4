package main

import (
	"github.com/ChizhovVadim/abtest/internal/arena"
)

func loadOpenings(path string, n int) ([]string, error) {
	if path == "" {
		return arena.Openings(arena.DefaultOpenings, n)
	}
	return arena.LoadOpenings(mapPath(path), n)
}
