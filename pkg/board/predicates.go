package board

// IsInCheck reports whether color's king is attacked, per §4.5: locate the king,
// then ask whether any opponent piece's pseudo-legal reach lands on it. Pseudo-legal
// reach is sufficient here -- pins and self-check are irrelevant when the question is
// only "is this square attacked".
func IsInCheck(b *Board, color Color) bool {
	kingSq, ok := b.FindKing(color)
	if !ok {
		panic("board: is_in_check called with no " + color.String() + " king on the board")
	}

	opp := color.Opposite()
	for _, sq := range PlayableSquares() {
		cell := b.Get(sq)
		if !cell.IsPiece() {
			continue
		}
		if c, _ := cell.Color(); c != opp {
			continue
		}
		for _, m := range GeneratePseudoLegal(b, sq) {
			if m.Dest == kingSq {
				return true
			}
		}
	}
	return false
}

// HasNoLegalMoves reports whether color has no move that escapes check (§4.5): every
// pseudo-legal move of every piece of color is tried on a clone; if any of them
// leaves color's own king safe, a legal move exists. Castling is not considered here
// -- it can never be the only way out of check, since castling itself requires the
// king not be in check to begin with (§4.4a).
func HasNoLegalMoves(b *Board, color Color) bool {
	for _, m := range GenerateAllPseudoLegal(b, color) {
		next := Apply(b, m)
		if !IsInCheck(next, color) {
			return false
		}
	}
	return true
}

// IsInCheckmate reports is_in_check(b,c) ∧ has_no_legal_moves(b,c) (§4.5).
func IsInCheckmate(b *Board, color Color) bool {
	return IsInCheck(b, color) && HasNoLegalMoves(b, color)
}

// IsInStalemate reports ¬is_in_check(b,c) ∧ has_no_legal_moves(b,c) (§4.5).
func IsInStalemate(b *Board, color Color) bool {
	return !IsInCheck(b, color) && HasNoLegalMoves(b, color)
}
