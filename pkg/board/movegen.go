package board

import "github.com/seekerror/stdlib/pkg/lang"

// Direction offsets on the mailbox, expressed as Slide(idx, dx, dy) deltas (§4.1).
var (
	rookOffsets   = []int{North, South, East, West}
	bishopOffsets = []int{North + East, North + West, South + East, South + West}
	queenOffsets  = append(append([]int{}, rookOffsets...), bishopOffsets...)
	knightOffsets = []int{
		2*North + East, 2*North + West,
		2*South + East, 2*South + West,
		2*East + North, 2*East + South,
		2*West + North, 2*West + South,
	}
)

// GeneratePseudoLegal returns the pseudo-legal destinations for the piece at src, as
// fully-formed Moves (flags for capture/en passant already set), per the per-kind
// rules of §4.3. Castling destinations are not included; see castlingMoves (§4.4a).
func GeneratePseudoLegal(b *Board, src Square) []Move {
	cell := b.Get(src)
	if !cell.IsPiece() {
		return nil
	}
	color, _ := cell.Color()

	switch cell.Kind() {
	case Pawn:
		return pawnMoves(b, src, color, cell)
	case Knight:
		return jumpMoves(b, src, color, cell, knightOffsets)
	case Bishop:
		return sliderMoves(b, src, color, cell, bishopOffsets)
	case Rook:
		return sliderMoves(b, src, color, cell, rookOffsets)
	case Queen:
		return sliderMoves(b, src, color, cell, queenOffsets)
	case King:
		return jumpMoves(b, src, color, cell, queenOffsets)
	default:
		return nil
	}
}

// GenerateAllPseudoLegal enumerates the pseudo-legal moves of every piece of color,
// walking the board in ascending mailbox-index order for deterministic results (§5).
func GenerateAllPseudoLegal(b *Board, color Color) []Move {
	var moves []Move
	for _, sq := range PlayableSquares() {
		cell := b.Get(sq)
		if !cell.IsPiece() {
			continue
		}
		if c, _ := cell.Color(); c != color {
			continue
		}
		moves = append(moves, GeneratePseudoLegal(b, sq)...)
	}
	return moves
}

// jumpMoves handles knights and kings: a fixed set of single-step offsets, each
// filtered by empty_or_capture (§4.3 Knight/King).
func jumpMoves(b *Board, src Square, color Color, piece Cell, offsets []int) []Move {
	var moves []Move
	for _, off := range offsets {
		dest := src + Square(off)
		if !dest.IsOnBoard() {
			continue
		}
		target := b.Get(dest)
		if target.IsGuard() {
			continue
		}
		if target.IsPiece() {
			if tc, _ := target.Color(); tc == color {
				continue
			}
			moves = append(moves, Move{Piece: piece, Src: src, Dest: dest, IsCapture: true})
			continue
		}
		moves = append(moves, Move{Piece: piece, Src: src, Dest: dest})
	}
	return moves
}

// sliderMoves handles rooks, bishops and queens: each direction yields empty squares
// until it meets a guard, an own piece (excluded, stop), or an enemy piece (included
// as a capture, then stop) (§4.3 Rook/Bishop/Queen).
func sliderMoves(b *Board, src Square, color Color, piece Cell, offsets []int) []Move {
	var moves []Move
	for _, off := range offsets {
		for dest := src + Square(off); ; dest += Square(off) {
			if !dest.IsOnBoard() {
				break
			}
			target := b.Get(dest)
			if target.IsGuard() {
				break
			}
			if target.IsEmpty() {
				moves = append(moves, Move{Piece: piece, Src: src, Dest: dest})
				continue
			}
			if tc, _ := target.Color(); tc != color {
				moves = append(moves, Move{Piece: piece, Src: src, Dest: dest, IsCapture: true})
			}
			break
		}
	}
	return moves
}

// pawnMoves implements §4.3's pawn rules: single push, double push from the starting
// rank, diagonal captures, and en-passant captures per the §4.3a predicate. A push or
// capture landing on the last rank is expanded into one Move per promotion kind.
func pawnMoves(b *Board, src Square, color Color, piece Cell) []Move {
	var moves []Move

	forward := North
	startRank := 2
	if color == Black {
		forward = South
		startRank = 7
	}

	one := src + Square(forward)
	if one.IsOnBoard() && b.Get(one).IsEmpty() {
		moves = append(moves, expandPromotion(piece, src, one, false)...)
		if src.Rank() == startRank {
			two := one + Square(forward)
			if two.IsOnBoard() && b.Get(two).IsEmpty() {
				moves = append(moves, Move{Piece: piece, Src: src, Dest: two})
			}
		}
	}

	for _, diag := range []int{forward + East, forward + West} {
		dest := src + Square(diag)
		if !dest.IsOnBoard() {
			continue
		}
		target := b.Get(dest)
		if target.IsGuard() {
			continue
		}
		if target.IsPiece() {
			if tc, _ := target.Color(); tc != color {
				moves = append(moves, expandPromotion(piece, src, dest, true)...)
			}
			continue
		}
		if isEnPassantTarget(b, src, dest, color) {
			moves = append(moves, Move{Piece: piece, Src: src, Dest: dest, IsCapture: true, IsEnPassant: true})
		}
	}

	return moves
}

func expandPromotion(piece Cell, src, dest Square, capture bool) []Move {
	color, _ := piece.Color()
	lastRank := 8
	if color == Black {
		lastRank = 1
	}
	if dest.Rank() != lastRank {
		return []Move{{Piece: piece, Src: src, Dest: dest, IsCapture: capture}}
	}

	moves := make([]Move, 0, 4)
	for _, k := range []Kind{Queen, Rook, Bishop, Knight} {
		moves = append(moves, Move{Piece: piece, Src: src, Dest: dest, IsCapture: capture, Promotion: lang.Some(k)})
	}
	return moves
}

// isEnPassantTarget implements the en-passant predicate of §4.3a: a pawn diagonal to
// an empty square is an en-passant capture only when the destination sits on the
// en-passant rank and the square immediately behind it (from the mover's
// perspective) holds an enemy pawn. It accepts any en-passant-shaped opportunity
// without confirming a prior two-square push by that pawn -- the known limitation
// documented in §4.3a and §9.
func isEnPassantTarget(b *Board, src, dest Square, color Color) bool {
	if src.File() == dest.File() {
		return false
	}

	wantRank, behind := 6, South
	if color == Black {
		wantRank, behind = 3, North
	}
	if dest.Rank() != wantRank {
		return false
	}

	behindSq := dest + Square(behind)
	if !behindSq.IsOnBoard() {
		return false
	}
	cell := b.Get(behindSq)
	if cell.Kind() != Pawn {
		return false
	}
	c, _ := cell.Color()
	return c != color
}
