package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuanhenglee/go-nogo-mcts/board"
)

func TestBaselineRandomPlayerPlaysALegalMove(t *testing.T) {
	cfg := Config{Name: "r", Role: board.Black, Seed: 1, HasSeed: true}
	p := NewBaselineRandomPlayer(cfg)

	pos := board.NewPosition()
	action := p.TakeAction(pos)
	require.False(t, action.IsResign())
	require.Equal(t, board.Black, action.Side)
	require.True(t, pos.LegalMoves(board.Black).Test(int(action.Point)))
}

func TestBaselineRandomPlayerResignsWithNoLegalMove(t *testing.T) {
	pos := board.NewPosition()
	for i := 1; i < 81; i++ {
		require.NoError(t, pos.Place(board.White, board.Point(i)))
	}

	cfg := Config{Name: "r", Role: board.Black, Seed: 2, HasSeed: true}
	p := NewBaselineRandomPlayer(cfg)

	action := p.TakeAction(pos)
	require.True(t, action.IsResign())
}

func TestMCTSPlayerPlaysALegalMove(t *testing.T) {
	cfg := Config{
		Name: "m", Role: board.Black, Seed: 3, HasSeed: true,
		Method: MethodMCTS, Iterations: 200, TimeBudgetMs: 200,
	}
	p := NewMCTSPlayer(cfg)

	pos := board.NewPosition()
	action := p.TakeAction(pos)
	require.False(t, action.IsResign())
	require.True(t, pos.LegalMoves(board.Black).Test(int(action.Point)))
	require.Greater(t, p.LastIterations(), 0)
}

func TestBaselineRandomPlayerReportsZeroIterations(t *testing.T) {
	cfg := Config{Name: "r", Role: board.Black, Seed: 1, HasSeed: true}
	p := NewBaselineRandomPlayer(cfg)

	pos := board.NewPosition()
	p.TakeAction(pos)
	require.Equal(t, 0, p.LastIterations())
}

func TestMCTSPlayerResignsWithNoLegalMove(t *testing.T) {
	pos := board.NewPosition()
	for i := 1; i < 81; i++ {
		require.NoError(t, pos.Place(board.White, board.Point(i)))
	}

	cfg := Config{Name: "m", Role: board.Black, Method: MethodMCTS, Iterations: 100, TimeBudgetMs: 50}
	p := NewMCTSPlayer(cfg)

	action := p.TakeAction(pos)
	require.True(t, action.IsResign())
}

func TestCheckForWinReflectsOpponentStuck(t *testing.T) {
	pos := board.NewPosition()
	for i := 1; i < 81; i++ {
		require.NoError(t, pos.Place(board.White, board.Point(i)))
	}

	white := NewBaselineRandomPlayer(Config{Name: "w", Role: board.White})
	black := NewBaselineRandomPlayer(Config{Name: "b", Role: board.Black})

	require.True(t, white.CheckForWin(pos), "white should have won: black has no legal move")
	require.True(t, black.CheckForWin(pos), "white has no legal move either: (0,0) is its own group's last liberty")
}
