package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/zserge/matefinder/pkg/board"
)

func TestCastleKingsideWhenClear(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "k", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", "R"},
	})
	require.NoError(t, err)

	next, err := b.ApplyMove(board.NewSquare(4, 1), board.NewSquare(6, 1), lang.Optional[board.Kind]{})
	require.NoError(t, err)
	require.Equal(t, board.MakeCell(board.White, board.King), next.Get(board.NewSquare(6, 1)))
	require.Equal(t, board.MakeCell(board.White, board.Rook), next.Get(board.NewSquare(5, 1)))
	require.True(t, next.Get(board.NewSquare(7, 1)).IsEmpty())
}

func TestCastleThroughCheckIsIllegal(t *testing.T) {
	// Scenario 6 (§8): White king e1, White rook h1, Black rook f8 -- O-O is illegal
	// because the king would pass through f1, which the black rook attacks.
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "", "r", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", "R"},
	})
	require.NoError(t, err)

	_, err = b.ApplyMove(board.NewSquare(4, 1), board.NewSquare(6, 1), lang.Optional[board.Kind]{})
	require.Error(t, err)
	var illegal *board.IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, board.NewSquare(4, 1), illegal.From)
	require.Equal(t, board.NewSquare(6, 1), illegal.To)
}

func TestCastleWhileInCheckIsIllegal(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "r", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", "R"},
	})
	require.NoError(t, err)

	require.True(t, b.IsInCheck(board.White))
	_, err = b.ApplyMove(board.NewSquare(4, 1), board.NewSquare(6, 1), lang.Optional[board.Kind]{})
	require.Error(t, err)
}

func TestMoveIntoCheckIsIllegal(t *testing.T) {
	// White king e4 in check along the e-file from the black rook on e8: legal king moves
	// must leave the e-file, since staying on it (e3/e5) is still check.
	b, err := board.FromArray([8][8]string{
		{"k", "", "", "", "r", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "K", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
	})
	require.NoError(t, err)

	legal := b.LegalMoves(board.White)
	require.NotEmpty(t, legal)
	for _, m := range legal {
		require.NotEqual(t, 4, m.Dest.File(), "king must not stay on the e-file under rook check")
	}
}
