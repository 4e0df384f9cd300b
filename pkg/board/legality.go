package board

// IsLegal reports whether m is legal on b (§4.4): a pseudo-legal move is legal iff
// its successor does not leave the mover's own king in check; a castle is legal iff
// isCastleLegal holds (§4.4a). m's flags (IsCastle, IsEnPassant, IsCapture) are
// trusted, as set by GeneratePseudoLegal or MoveFromSquares.
func IsLegal(b *Board, m Move) bool {
	if m.IsCastle {
		return isCastleLegal(b, m)
	}
	mover, _ := m.Piece.Color()
	next := Apply(b, m)
	return !IsInCheck(next, mover)
}

// GenerateLegal enumerates every legal move of color: the pseudo-legal moves that
// survive IsLegal, plus any legal castles (§4.4, §4.7 gen_all_moves).
func GenerateLegal(b *Board, color Color) []Move {
	var legal []Move
	for _, m := range GenerateAllPseudoLegal(b, color) {
		if IsLegal(b, m) {
			legal = append(legal, m)
		}
	}
	return append(legal, castlingMoves(b, color)...)
}

// castlingMoves returns color's legal castling moves, kingside and queenside.
func castlingMoves(b *Board, color Color) []Move {
	kingSq, ok := b.FindKing(color)
	if !ok {
		return nil
	}
	piece := b.Get(kingSq)

	var moves []Move
	for _, dest := range []Square{kingSq + 2, kingSq - 2} {
		m := Move{Piece: piece, Src: kingSq, Dest: dest, IsCastle: true}
		if isCastleLegal(b, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// isCastleLegal implements §4.4a in full:
//   - the moving piece is a king standing on its home square (e1/e8);
//   - the squares between king and rook are empty;
//   - the corresponding rook, of the same color, still stands on its home square;
//   - the king is not currently in check;
//   - the king does not pass through or land on a square attacked by the opponent.
//
// Castling rights (whether king or rook have previously moved) are not tracked; this
// is the documented known limitation of §4.4a and §9.
func isCastleLegal(b *Board, m Move) bool {
	piece := b.Get(m.Src)
	if piece.Kind() != King {
		return false
	}
	color, _ := piece.Color()

	home := NewSquare(4, 1)
	if color == Black {
		home = NewSquare(4, 8)
	}
	if m.Src != home {
		return false
	}

	short := m.Dest > m.Src

	var between []Square
	var rookSrc Square
	if short {
		between = []Square{m.Src + 1, m.Src + 2}
		rookSrc = m.Src + 3
	} else {
		between = []Square{m.Src - 1, m.Src - 2, m.Src - 3}
		rookSrc = m.Src - 4
	}

	for _, sq := range between {
		if !b.Get(sq).IsEmpty() {
			return false
		}
	}

	rook := b.Get(rookSrc)
	if rook.Kind() != Rook {
		return false
	}
	if rc, _ := rook.Color(); rc != color {
		return false
	}

	if IsInCheck(b, color) {
		return false
	}

	// The king must not pass through or land on an attacked square; the b-file square
	// of a long castle is crossed only by the rook, not by the king, so it is excluded
	// from this check.
	pass := between
	if !short {
		pass = between[:2]
	}
	for _, sq := range pass {
		probe := b.Clone()
		probe.cells[m.Src] = Empty
		probe.cells[sq] = piece
		if IsInCheck(probe, color) {
			return false
		}
	}

	return true
}
