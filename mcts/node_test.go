package mcts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuanhenglee/go-nogo-mcts/bitboard"
	"github.com/yuanhenglee/go-nogo-mcts/board"
)

func TestNewNodeHasRavePriorLowerBound(t *testing.T) {
	n := newNode(noParent, board.Black, board.NewPoint(4, 4))
	require.GreaterOrEqual(t, n.raveVisits, int32(20))
	require.GreaterOrEqual(t, n.raveWins, int32(10))
}

func TestScoreFormulaMatchesSpecVerbatim(t *testing.T) {
	n := newNode(noParent, board.Black, board.NewPoint(0, 0))
	n.visits = 4
	n.wins = 2

	parentLogVisits := math.Log(10)
	got := n.score(parentLogVisits)
	want := (float64(n.raveWins) + float64(n.wins) + 0.25*math.Sqrt(parentLogVisits*float64(n.visits))) /
		(float64(n.raveVisits) + float64(n.visits))
	require.InDelta(t, want, got, 1e-12)
}

func TestArenaExpandAllocatesOneChildPerLegalPoint(t *testing.T) {
	a := newArena(8)
	a.nodes = append(a.nodes, newNode(noParent, board.White, board.NoPoint))

	legal := bitboard.Empty
	for _, i := range []int{3, 7, 40, 80} {
		legal.Set(i)
	}

	start := a.expand(0, board.Black, legal)
	require.Equal(t, int32(1), start) // index 0 is the root itself
	root := a.get(0)
	require.Equal(t, int32(4), root.childCount)

	children := a.children(0)
	require.Len(t, children, 4)
	for i, want := range []int{3, 7, 40, 80} {
		require.Equal(t, board.Point(want), children[i].move)
		require.Equal(t, board.Black, children[i].side)
		require.GreaterOrEqual(t, children[i].raveVisits, int32(20))
		require.GreaterOrEqual(t, children[i].raveWins, int32(10))
	}
}
