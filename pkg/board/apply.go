package board

import "github.com/seekerror/stdlib/pkg/lang"

// Apply returns a clone of b with m applied, per §4.6 (gen_successor_from_move). It
// trusts m's flags; pair it with IsLegal (§4.4) when the move's legality matters.
func Apply(b *Board, m Move) *Board {
	next := b.Clone()
	next.apply(m)
	return next
}

func (b *Board) apply(m Move) {
	piece := b.Get(m.Src)

	switch {
	case m.IsCastle:
		b.applyCastle(m, piece)
	case m.IsEnPassant:
		b.applyEnPassant(m, piece)
	default:
		b.applyNormal(m, piece)
	}
}

func (b *Board) applyNormal(m Move, piece Cell) {
	if promo, ok := m.Promotion.V(); ok {
		if m.Dest.Rank() != 8 && m.Dest.Rank() != 1 {
			panic("board: promotion move does not land on the last rank")
		}
		color, _ := piece.Color()
		b.cells[m.Dest] = MakeCell(color, promo)
	} else {
		b.cells[m.Dest] = piece
	}
	b.cells[m.Src] = Empty
}

func (b *Board) applyEnPassant(m Move, piece Cell) {
	color, _ := piece.Color()
	behind := South
	if color == Black {
		behind = North
	}
	b.cells[m.Dest] = piece
	b.cells[m.Src] = Empty
	b.cells[m.Dest+Square(behind)] = Empty
}

func (b *Board) applyCastle(m Move, piece Cell) {
	if piece.Kind() != King {
		panic("board: apply_move called with is_castle on a non-king piece")
	}
	color, _ := piece.Color()

	b.cells[m.Dest] = piece
	b.cells[m.Src] = Empty

	var rookSrc, rookDest Square
	if m.Dest > m.Src {
		rookSrc, rookDest = m.Src+3, m.Src+1
	} else {
		rookSrc, rookDest = m.Src-4, m.Src-1
	}
	b.cells[rookDest] = MakeCell(color, Rook)
	b.cells[rookSrc] = Empty
}

// Successor looks up the moving piece at src and applies the move to dest with no
// promotion, inferring capture/en-passant/castle flags from the board (gen_successor).
// Callers that need a specific promotion kind should build the Move with
// MoveFromSquares and call Apply directly.
func Successor(b *Board, src, dest Square) *Board {
	m, ok := MoveFromSquares(b, src, dest, lang.Optional[Kind]{})
	if !ok {
		panic("board: gen_successor called with a move the board cannot describe")
	}
	return Apply(b, m)
}

// MoveFromSquares builds the fully-flagged Move for a (src, dest, promotion?)
// triple by consulting the board -- the seam described in §4.9 where the core
// accepts an external caller's decomposed move triple. It resolves the triple
// against GeneratePseudoLegal (and, for a king's two-square step, the candidate
// castles), so a triple that names a square no pseudo-legal move of that piece
// reaches is rejected rather than blindly executed. It does not check check-safety;
// combine with IsLegal (§4.4). The second return value is false if src holds no
// piece, or if no pseudo-legal move (or castle) matches (src, dest, promotion?).
// When promotion is unspecified and dest is a promotion square, Queen is assumed.
func MoveFromSquares(b *Board, src, dest Square, promotion lang.Optional[Kind]) (Move, bool) {
	piece := b.Get(src)
	if !piece.IsPiece() {
		return Move{}, false
	}
	color, _ := piece.Color()

	if piece.Kind() == King {
		for _, m := range castlingMoves(b, color) {
			if m.Dest == dest {
				return m, true
			}
		}
	}

	want, wantSet := promotion.V()
	if !wantSet {
		want = Queen
	}

	var plain Move
	havePlain := false
	for _, m := range GeneratePseudoLegal(b, src) {
		if m.Dest != dest {
			continue
		}
		if p, isPromo := m.Promotion.V(); isPromo {
			if p == want {
				return m, true
			}
			continue
		}
		plain, havePlain = m, true
	}
	if havePlain {
		return plain, true
	}
	return Move{}, false
}
