package board

import "github.com/seekerror/stdlib/pkg/lang"

// GetPiece returns the contents of sq (§6).
func (b *Board) GetPiece(sq Square) Cell {
	return b.Get(sq)
}

// ApplyMove is the caller-facing entry point of §6: given an external (from, to,
// promotion?) triple, it builds the corresponding Move, rejects it with
// *IllegalMoveError if §4.4 does not accept it, and otherwise returns the successor
// board. b is never mutated.
func (b *Board) ApplyMove(from, to Square, promotion lang.Optional[Kind]) (*Board, error) {
	m, ok := MoveFromSquares(b, from, to, promotion)
	if !ok || !IsLegal(b, m) {
		return nil, &IllegalMoveError{From: from, To: to}
	}
	return Apply(b, m), nil
}

// IsInCheck reports whether color's king is attacked on b (§4.5).
func (b *Board) IsInCheck(color Color) bool {
	return IsInCheck(b, color)
}

// IsInCheckmate reports whether color is checkmated on b (§4.5).
func (b *Board) IsInCheckmate(color Color) bool {
	return IsInCheckmate(b, color)
}

// IsInStalemate reports whether color is stalemated on b (§4.5).
func (b *Board) IsInStalemate(color Color) bool {
	return IsInStalemate(b, color)
}

// LegalMoves enumerates color's legal moves on b (§4.7 gen_all_moves).
func (b *Board) LegalMoves(color Color) []Move {
	return GenerateLegal(b, color)
}
