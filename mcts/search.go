// Package mcts implements the time-bounded Monte-Carlo Tree Search
// with RAVE that chooses a move: selection via the UCT+RAVE score,
// expansion one node at a time, playout-policy simulation, and
// backpropagation of both direct and RAVE statistics. The search is
// single-threaded: one PRNG, one arena, no locks.
package mcts

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yuanhenglee/go-nogo-mcts/board"
	"github.com/yuanhenglee/go-nogo-mcts/playout"
	"golang.org/x/exp/rand"
)

// defaultIterations and defaultDuration are the reference budget from
// spec.md §4.4: 50,000 playouts or one second, whichever comes first.
const (
	defaultIterations = 50000
	defaultDuration   = time.Second
	// minIterationFraction is the share of the iteration budget that
	// must run before the wall clock is consulted at all, so a slow
	// start (scheduler jitter, a cold cache) cannot stop the search
	// before it has done meaningful work.
	minIterationFraction = 0.2
)

// Option configures a Search.
type Option func(*Search)

// WithIterations sets the maximum number of playouts per move.
func WithIterations(n int) Option {
	return func(s *Search) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithTimeBudget sets the wall-clock budget per move.
func WithTimeBudget(d time.Duration) Option {
	return func(s *Search) {
		if d > 0 {
			s.budget = d
		}
	}
}

// WithSeed seeds the search's PRNG for reproducible play.
func WithSeed(seed uint64) Option {
	return func(s *Search) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an already-constructed PRNG. Options apply in order,
// so it replaces the PRNG of an earlier WithSeed and is replaced by a
// later one.
func WithRand(rng *rand.Rand) Option {
	return func(s *Search) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// Search holds one outer-loop configuration. A Search instance is
// reused across calls to BestMove; no tree state persists between
// calls per spec.md §5.
type Search struct {
	maxIterations int
	budget        time.Duration
	rng           *rand.Rand
}

// New builds a Search with the reference budget (50,000 iterations or
// one second) unless overridden by options.
func New(options ...Option) *Search {
	s := &Search{
		maxIterations: defaultIterations,
		budget:        defaultDuration,
		rng:           rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Stats reports how a single BestMove call spent its budget, useful
// for diagnostics and metrics export.
type Stats struct {
	Iterations int
	Elapsed    time.Duration
}

// BestMove runs one search from position with side to move and
// returns the chosen point along with the iteration/time stats spent
// finding it. position is read-only; the search works on its own
// clones. Per spec, a side with no legal move is not an error: BestMove
// returns board.NoPoint (the null action), which the caller interprets
// as a loss for side.
func (s *Search) BestMove(position *board.Position, side board.Side) (board.Point, Stats) {
	if !position.HasLegalMove(side) {
		return board.NoPoint, Stats{}
	}

	// The capacity hint is deliberately independent of maxIterations: a
	// caller may set a huge iteration cap while relying on the time
	// budget to cut the search short (S6), and preallocating for the
	// cap would defeat that. The arena grows by ordinary append.
	a := newArena(1024)
	a.nodes = append(a.nodes, newNode(noParent, board.Other(side), board.NoPoint))

	minIterations := int(minIterationFraction * float64(s.maxIterations))
	start := time.Now()

	iterations := 0
	for iterations < s.maxIterations {
		if iterations >= minIterations && time.Since(start) >= s.budget {
			break
		}
		s.runIteration(a, position)
		iterations++
	}

	elapsed := time.Since(start)
	log.Debug().Int("iterations", iterations).Dur("elapsed", elapsed).Msg("mcts: search complete")

	root := a.get(0)
	if root.childCount == 0 {
		// The iteration budget never reached a second visit to the root
		// to expand it, so there are no visit counts to compare. side was
		// already confirmed to have a legal move above; return its
		// lowest-indexed legal point, which is its only candidate when it
		// has exactly one reply.
		legal := position.LegalMoves(side)
		pt, ok := legal.LowestSet()
		if !ok {
			panic("mcts: root has a legal move but LegalMoves is empty")
		}
		return board.Point(pt), Stats{Iterations: iterations, Elapsed: elapsed}
	}

	best := bestByVisits(a, 0)
	return a.get(best).move, Stats{Iterations: iterations, Elapsed: elapsed}
}

// bestByVisits returns the child of parent with the most visits,
// ties broken by the lowest move index (children are allocated in
// increasing point-index order, so a strict left-to-right scan
// already resolves ties correctly).
func bestByVisits(a *arena, parent int32) int32 {
	p := a.get(parent)
	best := p.childStart
	bestVisits := a.get(best).visits
	for i := p.childStart + 1; i < p.childStart+p.childCount; i++ {
		if v := a.get(i).visits; v > bestVisits {
			best, bestVisits = i, v
		}
	}
	return best
}

// runIteration performs one selection/expansion/simulation/
// backpropagation cycle on a fresh board clone.
func (s *Search) runIteration(a *arena, root *board.Position) {
	pos := root.Clone()
	cur := int32(0)
	path := []int32{0}

	for {
		nd := a.get(cur)
		if nd.isLeaf {
			break
		}
		if nd.childCount > 0 {
			cur = a.selectBestChild(cur, s.rng)
			child := a.get(cur)
			pos.MustPlace(child.side, child.move)
			path = append(path, cur)
			continue
		}
		if nd.visits == 0 {
			break
		}

		mover := board.Other(nd.side)
		legal := pos.LegalMoves(mover)
		if legal.IsEmpty() {
			nd.isLeaf = true
			break
		}
		a.expand(cur, mover, legal)

		cur = a.selectBestChild(cur, s.rng)
		child := a.get(cur)
		pos.MustPlace(child.side, child.move)
		path = append(path, cur)
	}

	leaf := a.get(cur)
	var result playout.Result
	if leaf.isLeaf {
		result = playout.Result{Winner: leaf.side}
	} else {
		result = playout.Run(pos, board.Other(leaf.side), s.rng)
	}

	backpropagate(a, path, result)
}
