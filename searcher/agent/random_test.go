package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"nogo/game"
)

func TestRandomAgentChooseMove(t *testing.T) {
	t.Run("returns a legal move", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(1)))
		board := game.NewBoard()

		for i := 0; i < 20; i++ {
			pos, ok, _ := a.ChooseMove(board, game.Black)
			require.True(t, ok)
			require.True(t, board.LegalMoves(game.Black).Test(pos),
				"Random agent should only pick legal moves")
		}
	})

	t.Run("passes when blocked", func(t *testing.T) {
		board, err := game.ParseBoard([]string{
			"XXXXXXXX.",
			"XXXXXXXXX",
			"XXXXXXXXX",
			"XXXXXXXXX",
			"XXXXXXXXX",
			"XXXXXXXXX",
			"XXXXXXXXX",
			"XXXXXXXXX",
			"O.XXXXXXX",
		})
		require.NoError(t, err)
		a := NewRandomAgent(rand.New(rand.NewSource(1)))

		pos, ok, _ := a.ChooseMove(board, game.White)

		require.False(t, ok, "Blocked side should pass")
		require.Equal(t, game.NoPos, pos)
	})

	t.Run("rejects a nil rng", func(t *testing.T) {
		require.Panics(t, func() {
			NewRandomAgent(nil)
		})
	})
}
