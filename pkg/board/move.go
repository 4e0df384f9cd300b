package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Move is an applied or about-to-be-applied transition, carrying the metadata the
// legality filter, move execution, and notation all need without recomputation (§3).
type Move struct {
	// Piece is the moving piece at Src, kept for display and move ordering.
	Piece Cell
	Src   Square
	Dest  Square

	// Promotion is the desired piece kind when a pawn reaches the last rank.
	Promotion lang.Optional[Kind]

	IsCastle    bool
	IsEnPassant bool
	IsCapture   bool
}

// Equals reports whether two moves describe the same transition (src, dest and
// promotion kind; flags are derived from those and the board, so they are not
// compared independently).
func (m Move) Equals(o Move) bool {
	if m.Src != o.Src || m.Dest != o.Dest {
		return false
	}
	mp, mok := m.Promotion.V()
	op, ook := o.Promotion.V()
	return mok == ook && mp == op
}

// String renders the move as pure coordinate notation, e.g. "e2e4" or "a7a8q",
// the shape external callers supply as a (from, to, promotion?) triple (§4.9).
func (m Move) String() string {
	if p, ok := m.Promotion.V(); ok {
		return fmt.Sprintf("%v%v%v", m.Src, m.Dest, toLowerLetter(p))
	}
	return fmt.Sprintf("%v%v", m.Src, m.Dest)
}

func toLowerLetter(k Kind) string {
	l := k.Letter()
	if l == "" {
		return ""
	}
	return string(l[0] - 'A' + 'a')
}

// Show renders the move in the "normal person" notation of §4.9:
//   - castling: O-O / O-O-O
//   - promotion: <from>x<to>=<Kind> or <from>-<to>=<Kind>
//   - en passant: <from>x<to> (ep)
//   - otherwise: <KindLetter><from><sep><to>, KindLetter omitted for pawns,
//     sep "x" for a capture and "-" for a quiet move.
func (m Move) Show(b *Board) string {
	if m.IsCastle {
		if m.Dest > m.Src {
			return "O-O"
		}
		return "O-O-O"
	}

	if p, ok := m.Promotion.V(); ok {
		sep := "-"
		if m.IsCapture {
			sep = "x"
		}
		return fmt.Sprintf("%v%v%v=%v", m.Src, sep, m.Dest, p.Letter())
	}

	if m.IsEnPassant {
		return fmt.Sprintf("%vx%v (ep)", m.Src, m.Dest)
	}

	sep := "-"
	if m.IsCapture {
		sep = "x"
	}
	letter := m.Piece.Kind().Letter()
	if m.Piece.Kind() == Pawn {
		letter = ""
	}
	return fmt.Sprintf("%v%v%v%v", letter, m.Src, sep, m.Dest)
}
