package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuanhenglee/go-nogo-mcts/board"
)

func TestParseMetaBasicRole(t *testing.T) {
	cfg, err := ParseMeta("name=alice role=black")
	require.NoError(t, err)
	require.Equal(t, "alice", cfg.Name)
	require.Equal(t, board.Black, cfg.Role)
	require.Equal(t, MethodRandom, cfg.Method)
	require.False(t, cfg.HasSeed)
}

func TestParseMetaMissingRoleFails(t *testing.T) {
	_, err := ParseMeta("name=alice")
	require.Error(t, err)
}

func TestParseMetaInvalidRoleFails(t *testing.T) {
	_, err := ParseMeta("name=alice role=green")
	require.Error(t, err)
}

func TestParseMetaInvalidNameFails(t *testing.T) {
	_, err := ParseMeta("name=bad[name] role=white")
	require.Error(t, err)
}

func TestParseMetaMCTSFlagAndTunables(t *testing.T) {
	cfg, err := ParseMeta("name=bot role=white mcts seed=42 T=5000 time=500 debug")
	require.NoError(t, err)
	require.Equal(t, MethodMCTS, cfg.Method)
	require.True(t, cfg.HasSeed)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, 5000, cfg.Iterations)
	require.Equal(t, 500, cfg.TimeBudgetMs)
	require.True(t, cfg.Debug)
}

func TestParseMetaInvalidSeedFails(t *testing.T) {
	_, err := ParseMeta("name=bot role=black seed=notanumber")
	require.Error(t, err)
}
