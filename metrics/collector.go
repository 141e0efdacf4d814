// Package metrics collects per-move search statistics and per-game
// outcomes during self-play, and exports them as CSV for offline
// analysis.
package metrics

import (
	"time"

	"github.com/yuanhenglee/go-nogo-mcts/board"
)

// MoveMetric records one search's cost and outcome.
type MoveMetric struct {
	Step       int
	Player     string
	Side       board.Side
	Iterations int
	Duration   time.Duration
	Move       board.Point
}

// GameMetric summarizes one completed game.
type GameMetric struct {
	Black     string
	White     string
	Winner    string
	TotalMoves int
	Duration  time.Duration
}

// Collector accumulates metrics across a self-play session. Unlike
// the goroutine-worker-pool search this is adapted from, the search
// here is single-threaded, so no atomics are needed: a Collector is
// only ever touched from the one goroutine driving a game.
type Collector interface {
	AddMove(m MoveMetric)
	AddGame(g GameMetric)
	Moves() []MoveMetric
	Games() []GameMetric
}

type collector struct {
	moves []MoveMetric
	games []GameMetric
}

// NewCollector returns a Collector that records every move and game
// it's given.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddMove(m MoveMetric) { c.moves = append(c.moves, m) }
func (c *collector) AddGame(g GameMetric) { c.games = append(c.games, g) }
func (c *collector) Moves() []MoveMetric  { return c.moves }
func (c *collector) Games() []GameMetric  { return c.games }

type dummyCollector struct{}

// NewDummyCollector returns a Collector that discards everything,
// for callers that don't want the bookkeeping overhead.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (*dummyCollector) AddMove(MoveMetric) {}
func (*dummyCollector) AddGame(GameMetric) {}
func (*dummyCollector) Moves() []MoveMetric { return nil }
func (*dummyCollector) Games() []GameMetric { return nil }
