// Package search implements the depth-limited minimax mate search of §4.7: find a
// forced checkmate for a given color within n of that color's moves, or prove none
// exists at that depth.
package search

import (
	"context"
	"sort"

	"github.com/seekerror/logw"

	"github.com/zserge/matefinder/pkg/board"
	"github.com/zserge/matefinder/pkg/eval"
)

// turn distinguishes the attacker's ply (Max) from the defender's ply (Min) in the
// recursion's framing, independent of which absolute color is attacking (§4.7).
type turn int

const (
	Max turn = iota
	Min
)

// FindMateInN searches for a forced checkmate of attacker within n of attacker's
// moves (§4.7): depth_remaining = 2n-1 plies, attacker to move first at the root
// (turn = Max). ctx is used only for logging (C10); it carries no cancellation
// semantics, and context.Background() is always a correct argument.
func FindMateInN(ctx context.Context, b *board.Board, attacker board.Color, n int) (Result, Stats) {
	logw.Infof(ctx, "search: find_mate_in_n attacker=%v n=%v", attacker, n)

	stats := &Stats{}
	score, pv := dlsMinimax(ctx, b, 2*n-1, Max, nil, attacker, -Checkmate-1, Checkmate+1, stats)

	logw.Debugf(ctx, "search: visited %v nodes, score=%v pv=%v", stats.NodesVisited, score, pv)
	return Result{Score: score, PV: pv}, *stats
}

// dlsMinimax implements the recursion of §4.7. turn selects whose move is being
// chosen at this node; color is derived from turn relative to attacker, so the
// algorithm works whichever color is attacking. last is the move that led to this
// node, prepended to the returned PV; it is nil only at the root.
func dlsMinimax(
	ctx context.Context,
	b *board.Board,
	depthRemaining int,
	t turn,
	last *board.Move,
	attacker board.Color,
	alpha, beta int,
	stats *Stats,
) (int, []board.Move) {
	stats.NodesVisited++

	color := attacker
	if t == Min {
		color = attacker.Opposite()
	}

	if board.HasNoLegalMoves(b, color) {
		if board.IsInCheck(b, color) {
			score := Checkmate
			if t == Max {
				score = -Checkmate
			}
			return score, asPV(last)
		}
		return 0, asPV(last)
	}

	if depthRemaining == 0 {
		return 0, asPV(last)
	}

	moves := orderedMoves(b, color)
	nextTurn := Min
	if t == Min {
		nextTurn = Max
	}

	var pv []board.Move
	for i := range moves {
		m := moves[i]
		next := board.Apply(b, m)
		childScore, childPV := dlsMinimax(ctx, next, depthRemaining-1, nextTurn, &m, attacker, alpha, beta, stats)

		if t == Max {
			if childScore > alpha {
				alpha = childScore
				pv = childPV
			}
			if alpha >= Checkmate || alpha >= beta {
				break
			}
		} else {
			if childScore < beta || (childScore == beta && len(childPV) > len(pv)) {
				beta = childScore
				pv = childPV
			}
			if beta <= -Checkmate || alpha >= beta {
				break
			}
		}
	}

	if t == Max {
		return alpha, prepend(last, pv)
	}
	return beta, prepend(last, pv)
}

// orderedMoves returns color's legal moves sorted by eval.ScoreMove descending, so
// checking moves are explored first (§4.7 step 4, §4.8).
func orderedMoves(b *board.Board, color board.Color) []board.Move {
	moves := b.LegalMoves(color)
	sort.SliceStable(moves, func(i, j int) bool {
		return eval.ScoreMove(b, moves[i]) > eval.ScoreMove(b, moves[j])
	})
	return moves
}

func asPV(last *board.Move) []board.Move {
	if last == nil {
		return nil
	}
	return []board.Move{*last}
}

func prepend(last *board.Move, pv []board.Move) []board.Move {
	if last == nil {
		return pv
	}
	out := make([]board.Move, 0, len(pv)+1)
	out = append(out, *last)
	return append(out, pv...)
}
