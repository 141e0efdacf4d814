package agent

import (
	"github.com/yuanhenglee/go-nogo-mcts/bitboard"
	"github.com/yuanhenglee/go-nogo-mcts/board"
	"golang.org/x/exp/rand"
)

// Player is the capability set every variant of an agent exposes to
// the outer game runner: episode lifecycle hooks plus the two queries
// that drive play, name/role identification, and a win check.
type Player interface {
	OpenEpisode(flag string)
	CloseEpisode(flag string)
	TakeAction(pos *board.Position) board.Action
	CheckForWin(pos *board.Position) bool
	Name() string
	Role() board.Side

	// LastIterations reports how many search iterations the most recent
	// TakeAction spent, or 0 for a player with no search to report (e.g.
	// BaselineRandomPlayer draws a move in constant time).
	LastIterations() int
}

// BaselineRandomPlayer plays a uniformly random legal point each turn.
// It exists primarily as an opponent to measure MCTSPlayer against.
type BaselineRandomPlayer struct {
	cfg Config
	rng *rand.Rand
}

// NewBaselineRandomPlayer builds a random player from cfg.
func NewBaselineRandomPlayer(cfg Config) *BaselineRandomPlayer {
	rng := rand.New(rand.NewSource(0))
	if cfg.HasSeed {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &BaselineRandomPlayer{cfg: cfg, rng: rng}
}

func (p *BaselineRandomPlayer) Name() string      { return p.cfg.Name }
func (p *BaselineRandomPlayer) Role() board.Side  { return p.cfg.Role }
func (p *BaselineRandomPlayer) OpenEpisode(string)  {}
func (p *BaselineRandomPlayer) CloseEpisode(string) {}

// TakeAction returns a uniformly random legal point for p's role, or
// the null action if none exists.
func (p *BaselineRandomPlayer) TakeAction(pos *board.Position) board.Action {
	legal := pos.LegalMoves(p.cfg.Role)
	if legal.IsEmpty() {
		return board.NoAction
	}
	pt := bitboard.RandomBit(legal, p.rng)
	return board.Action{Point: board.Point(pt), Side: p.cfg.Role}
}

// CheckForWin reports whether the opponent has no legal move, meaning
// p's side has won.
func (p *BaselineRandomPlayer) CheckForWin(pos *board.Position) bool {
	return !pos.HasLegalMove(board.Other(p.cfg.Role))
}

// LastIterations is always 0: a random draw runs no search.
func (p *BaselineRandomPlayer) LastIterations() int { return 0 }
