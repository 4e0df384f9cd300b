package search

import "github.com/zserge/matefinder/pkg/board"

// Checkmate is the score returned when a forced mate has been proven (§4.7).
const Checkmate = 10000

// Stats accumulates node-visited counts through the recursion. It is read-only with
// respect to the algorithm: it never influences which branch is chosen, only what
// FindMateInN logs once the top-level call returns (§4.7, C10).
type Stats struct {
	NodesVisited int
}

// Result is the (score, principal variation) pair FindMateInN returns (§3).
type Result struct {
	Score int
	PV    []board.Move
}
