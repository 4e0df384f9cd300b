// Package eval implements the static evaluation and move-ordering heuristic of §4.8:
// material scoring and a cheap "does this move check the opponent" ordering key.
package eval

import "github.com/zserge/matefinder/pkg/board"

// ScoreBoard returns Σ(white piece values) − Σ(black piece values), per the material
// table in §4.8. Positive favors White, negative favors Black.
func ScoreBoard(b *board.Board) int {
	score := 0
	for _, sq := range board.PlayableSquares() {
		cell := b.Get(sq)
		if !cell.IsPiece() {
			continue
		}
		v := cell.Kind().Value()
		if c, _ := cell.Color(); c == board.Black {
			v = -v
		}
		score += v
	}
	return score
}
