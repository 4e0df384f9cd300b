package eval

import "github.com/zserge/matefinder/pkg/board"

// Check is the move-ordering bonus awarded to a move that checks the opponent (§4.8).
const Check = 5

// ScoreMove returns Check if applying m to b puts the opponent in check, else 0. It
// is deliberately the only ordering heuristic, and deliberately cheap: one Apply and
// one IsInCheck, no deeper search.
func ScoreMove(b *board.Board, m board.Move) int {
	mover, _ := m.Piece.Color()
	next := board.Apply(b, m)
	if next.IsInCheck(mover.Opposite()) {
		return Check
	}
	return 0
}
