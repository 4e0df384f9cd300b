package board

import "fmt"

// IllegalMoveError is the error ApplyMove returns (§7): an otherwise well-formed
// (from, to) move that is not legal in the position it was offered against.
// Malformed input to ParseSquare, FromArray and FromFEN is reported as a plain error.
// Programmer faults -- guard-square writes, a missing king -- panic instead.
type IllegalMoveError struct {
	From Square
	To   Square
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("board: illegal move %v%v", e.From, e.To)
}
