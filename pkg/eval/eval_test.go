package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zserge/matefinder/pkg/board"
	"github.com/zserge/matefinder/pkg/eval"
)

func TestScoreBoard_StartingPositionIsLevel(t *testing.T) {
	require.Equal(t, 0, eval.ScoreBoard(board.NewBoard()))
}

func TestScoreBoard_MaterialTable(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "k", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"R", "N", "", "", "K", "", "", ""},
	})
	require.NoError(t, err)

	// White: R(5) + N(3) + K(1000) = 1008. Black: k(1000). Score = 1008 - 1000 = 8.
	require.Equal(t, 8, eval.ScoreBoard(b))
}

func TestScoreMove_ChecksAreRewarded(t *testing.T) {
	b, err := board.FromArray([8][8]string{
		{"", "", "", "", "k", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"K", "", "", "", "", "", "", "R"},
	})
	require.NoError(t, err)

	legal := b.LegalMoves(board.White)
	var checking, quiet board.Move
	var haveChecking, haveQuiet bool
	for _, m := range legal {
		if eval.ScoreMove(b, m) == eval.Check {
			checking, haveChecking = m, true
		} else {
			quiet, haveQuiet = m, true
		}
	}

	require.True(t, haveChecking, "rook to e-file should check the black king")
	require.True(t, haveQuiet)
	require.Equal(t, eval.Check, eval.ScoreMove(b, checking))
	require.Equal(t, 0, eval.ScoreMove(b, quiet))
}
