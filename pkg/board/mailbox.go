// Package board implements the mailbox board representation (C1), piece primitives
// (C2), pseudo-legal move generation (C3), the legality filter (C4), position
// predicates (C5), and move execution (C6) described in the specification. These
// components are kept in one package, as in the teacher's own board package,
// because the legality filter and the check/checkmate predicates are mutually
// recursive: legality asks "would this leave my king in check", which is itself
// phrased in terms of the same pseudo-legal generator.
package board

import (
	"fmt"
	"strings"
)

// Board is the 10x12 mailbox described in §3/§4.1: a fixed 120-cell array where the
// top two rows, bottom two rows, and outer file columns are Guard sentinels and
// the 64 enclosed cells hold Empty or a Piece. Board is a plain value; the search
// engine advances by cloning rather than mutating in place (§4.6, §5).
type Board struct {
	cells [120]Cell
}

// guardTemplate is the all-guard mailbox shared by every fresh board before pieces
// are placed; the border sentinels never change (§3 invariants).
var guardTemplate = func() [120]Cell {
	var g [120]Cell
	for i := range g {
		g[i] = Guard
	}
	for rank := 1; rank <= 8; rank++ {
		for file := 0; file < 8; file++ {
			g[NewSquare(file, rank)] = Empty
		}
	}
	return g
}()

var playableSquares = func() []Square {
	var sqs []Square
	for i := Square(0); i < 120; i++ {
		if guardTemplate[i] != Guard {
			sqs = append(sqs, i)
		}
	}
	return sqs
}()

// PlayableSquares returns all 64 board squares in ascending mailbox-index order: rank
// 8 down to rank 1, file a to h within each rank. Move generation and the check/mate
// predicates walk squares in this order so that results are reproducible (§5).
func PlayableSquares() []Square {
	return playableSquares
}

// NewEmptyBoard returns a board with every playable square empty, guard ring filled in.
func NewEmptyBoard() *Board {
	return &Board{cells: guardTemplate}
}

// NewBoard returns the standard chess starting position (§3).
func NewBoard() *Board {
	b, err := FromArray([8][8]string{
		{"r", "n", "b", "q", "k", "b", "n", "r"},
		{"p", "p", "p", "p", "p", "p", "p", "p"},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"P", "P", "P", "P", "P", "P", "P", "P"},
		{"R", "N", "B", "Q", "K", "B", "N", "R"},
	})
	if err != nil {
		panic(fmt.Sprintf("board: invalid starting position: %v", err))
	}
	return b
}

// FromArray builds a board from 8 rows of 8 algebraic piece letters, rows[0] being
// rank 8 and rows[7] rank 1; an empty string denotes an empty square (§4.1).
func FromArray(rows [8][8]string) (*Board, error) {
	b := NewEmptyBoard()
	for r := 0; r < 8; r++ {
		rank := 8 - r
		for f := 0; f < 8; f++ {
			s := rows[r][f]
			sq := NewSquare(f, rank)
			if s == "" {
				b.cells[sq] = Empty
				continue
			}
			if len(s) != 1 {
				return nil, fmt.Errorf("board: invalid piece %q at %v", s, sq)
			}
			k, ok := ParseKind(s[0])
			if !ok {
				return nil, fmt.Errorf("board: invalid piece %q at %v", s, sq)
			}
			b.cells[sq] = MakeCell(colorOfLetter(s[0]), k)
		}
	}
	return b, nil
}

// DumpArray is the inverse of FromArray, used to round-trip boards in tests (§8).
func (b *Board) DumpArray() [8][8]string {
	var rows [8][8]string
	for r := 0; r < 8; r++ {
		rank := 8 - r
		for f := 0; f < 8; f++ {
			c := b.cells[NewSquare(f, rank)]
			if c.IsEmpty() {
				rows[r][f] = ""
			} else {
				rows[r][f] = string(c)
			}
		}
	}
	return rows
}

// FromFEN parses the placement field of a FEN string; any remaining fields (active
// color, castling rights, en passant target, clocks) are ignored, per §4.1.
func FromFEN(fen string) (*Board, error) {
	field := strings.SplitN(fen, " ", 2)[0]
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: FEN must have 8 ranks, got %d: %q", len(ranks), fen)
	}

	b := NewEmptyBoard()
	for r, row := range ranks {
		rank := 8 - r
		file := 0
		for _, ch := range []byte(row) {
			switch {
			case ch >= '1' && ch <= '8':
				for n := int(ch - '0'); n > 0; n-- {
					if file >= 8 {
						return nil, fmt.Errorf("board: FEN rank %d overflows 8 files: %q", rank, row)
					}
					b.cells[NewSquare(file, rank)] = Empty
					file++
				}
			default:
				k, ok := ParseKind(ch)
				if !ok {
					return nil, fmt.Errorf("board: invalid FEN piece %q in %q", string(ch), row)
				}
				if file >= 8 {
					return nil, fmt.Errorf("board: FEN rank %d overflows 8 files: %q", rank, row)
				}
				b.cells[NewSquare(file, rank)] = MakeCell(colorOfLetter(ch), k)
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("board: FEN rank %d has %d files, want 8: %q", rank, file, row)
		}
	}
	return b, nil
}

func colorOfLetter(ch byte) Color {
	if ch >= 'a' && ch <= 'z' {
		return Black
	}
	return White
}

// Clone returns an independent copy of the board; search descends by cloning rather
// than mutating the parent in place (§4.6, §5).
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Equal reports whether two boards hold identical contents.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}

// Get returns the contents of sq. Guard cells return Guard.
func (b *Board) Get(sq Square) Cell {
	return b.cells[sq]
}

// Place sets the piece at sq, overwriting whatever was there. Placing on a guard
// square is a programmer fault (§7): it aborts with a diagnostic.
func (b *Board) Place(sq Square, c Color, k Kind) {
	if b.cells[sq] == Guard {
		panic(fmt.Sprintf("board: cannot place a piece on guard square %v", sq))
	}
	b.cells[sq] = MakeCell(c, k)
}

// Clear empties sq. Clearing a guard square is a programmer fault (§7).
func (b *Board) Clear(sq Square) {
	if b.cells[sq] == Guard {
		panic(fmt.Sprintf("board: cannot clear guard square %v", sq))
	}
	b.cells[sq] = Empty
}

// FindKing returns the square of color's king. The second return value is false if
// no such king is on the board (a programmer fault outside test fixtures, §3).
func (b *Board) FindKing(c Color) (Square, bool) {
	for _, sq := range PlayableSquares() {
		cell := b.cells[sq]
		if cell.Kind() != King {
			continue
		}
		if color, _ := cell.Color(); color == c {
			return sq, true
		}
	}
	return 0, false
}

// String renders the board as 8 ranks of 8 characters, rank 8 first, for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteByte(byte(b.cells[NewSquare(file, rank)]))
		}
		if rank > 1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
