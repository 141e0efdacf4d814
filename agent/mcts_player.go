package agent

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yuanhenglee/go-nogo-mcts/board"
	"github.com/yuanhenglee/go-nogo-mcts/mcts"
)

func logSearchStats(name string, stats mcts.Stats) {
	log.Debug().
		Str("player", name).
		Int("iterations", stats.Iterations).
		Dur("elapsed", stats.Elapsed).
		Msg("agent: search complete")
}

// MCTSPlayer wraps a single mcts.Search and drives it from the typed
// Config: iteration/time budget and seed pass straight through, and
// search diagnostics are logged rather than printed to stdout.
type MCTSPlayer struct {
	cfg       Config
	search    *mcts.Search
	lastStats mcts.Stats
}

// NewMCTSPlayer builds an MCTSPlayer from cfg. Config fields left at
// their zero value (T, time) fall back to the search package's own
// reference budget (50,000 iterations or one second).
func NewMCTSPlayer(cfg Config) *MCTSPlayer {
	var options []mcts.Option
	if cfg.Iterations > 0 {
		options = append(options, mcts.WithIterations(cfg.Iterations))
	}
	if cfg.TimeBudgetMs > 0 {
		options = append(options, mcts.WithTimeBudget(time.Duration(cfg.TimeBudgetMs)*time.Millisecond))
	}
	if cfg.HasSeed {
		options = append(options, mcts.WithSeed(cfg.Seed))
	}
	return &MCTSPlayer{cfg: cfg, search: mcts.New(options...)}
}

func (p *MCTSPlayer) Name() string     { return p.cfg.Name }
func (p *MCTSPlayer) Role() board.Side { return p.cfg.Role }

func (p *MCTSPlayer) OpenEpisode(string)  {}
func (p *MCTSPlayer) CloseEpisode(string) {}

// TakeAction runs one search and returns its chosen move, or the null
// action if p's role already has no legal move.
func (p *MCTSPlayer) TakeAction(pos *board.Position) board.Action {
	pt, stats := p.search.BestMove(pos, p.cfg.Role)
	p.lastStats = stats
	if pt == board.NoPoint {
		return board.NoAction
	}
	if p.cfg.Debug {
		logSearchStats(p.cfg.Name, stats)
	}
	return board.Action{Point: pt, Side: p.cfg.Role}
}

func (p *MCTSPlayer) CheckForWin(pos *board.Position) bool {
	return !pos.HasLegalMove(board.Other(p.cfg.Role))
}

// LastIterations reports the iteration count from the most recent
// TakeAction's search, for metrics collection.
func (p *MCTSPlayer) LastIterations() int { return p.lastStats.Iterations }
