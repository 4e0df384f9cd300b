package board_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/zserge/matefinder/pkg/board"
)

func TestApplyDoesNotMutateParent(t *testing.T) {
	b := board.NewBoard()
	before := b.DumpArray()

	next := board.Successor(b, board.NewSquare(4, 2), board.NewSquare(4, 4))
	require.False(t, next.Equal(b))

	after := b.DumpArray()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("gen_successor mutated the parent board (-before +after):\n%s", diff)
	}
}

func TestApplyPromotionDefaultsToQueen(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "", "", "", ""},
		{"P", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", ""},
	})
	require.NoError(t, err)

	next, err := b.ApplyMove(board.NewSquare(0, 7), board.NewSquare(0, 8), lang.Optional[board.Kind]{})
	require.NoError(t, err)
	require.Equal(t, board.MakeCell(board.White, board.Queen), next.Get(board.NewSquare(0, 8)))
}

func TestApplyPromotionHonorsExplicitKind(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "", "", "", ""},
		{"P", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", ""},
	})
	require.NoError(t, err)

	next, err := b.ApplyMove(board.NewSquare(0, 7), board.NewSquare(0, 8), lang.Some(board.Knight))
	require.NoError(t, err)
	require.Equal(t, board.MakeCell(board.White, board.Knight), next.Get(board.NewSquare(0, 8)))
}

func TestApplyEnPassantRemovesCapturedPawn(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "p", "P", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", ""},
	})
	require.NoError(t, err)

	next, err := b.ApplyMove(board.NewSquare(4, 5), board.NewSquare(3, 6), lang.Optional[board.Kind]{})
	require.NoError(t, err)
	require.True(t, next.Get(board.NewSquare(3, 5)).IsEmpty())
	require.Equal(t, board.MakeCell(board.White, board.Pawn), next.Get(board.NewSquare(3, 6)))
}

func TestApplyMoveRejectsIllegalMove(t *testing.T) {
	b := board.NewBoard()
	_, err := b.ApplyMove(board.NewSquare(0, 2), board.NewSquare(0, 5), lang.Optional[board.Kind]{})
	var illegal *board.IllegalMoveError
	require.ErrorAs(t, err, &illegal)
}
