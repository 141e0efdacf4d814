package mcts

import (
	"math"

	"github.com/yuanhenglee/go-nogo-mcts/bitboard"
	"github.com/yuanhenglee/go-nogo-mcts/board"
)

// raveVisitsPrior and raveWinsPrior seed every freshly allocated node
// with an optimistic RAVE estimate so unvisited children still receive
// a meaningful selection score instead of an undefined 0/0 ratio.
const (
	raveVisitsPrior = 20
	raveWinsPrior   = 10
)

// exploreWeight is the 0.25 coefficient on the RAVE/UCT exploration
// term in the score formula.
const exploreWeight = 0.25

// tieEpsilon is how close to the maximum score a child must be to be
// treated as tied during selection.
const tieEpsilon = 1e-4

// noParent marks the root's parent slot.
const noParent = -1

// node is one entry in the search tree's flat arena. side is the side
// that played move to reach this node from its parent; for the root,
// side is the opponent of the side to move, so that the root's
// children (whose side is other(root.side)) are exactly the moves
// available to the side the search was asked to find a move for.
type node struct {
	side       board.Side
	move       board.Point
	parent     int32
	childStart int32
	childCount int32
	visits     int32
	wins       int32
	raveVisits int32
	raveWins   int32
	logVisits  float64
	isLeaf     bool
}

func newNode(parent int32, side board.Side, move board.Point) node {
	return node{
		side:       side,
		move:       move,
		parent:     parent,
		raveVisits: raveVisitsPrior,
		raveWins:   raveWinsPrior,
	}
}

// logVisits computes ln(n) for a visit count, treated as the cached
// log_visits field; n is always >= 1 whenever this is called, since it
// only follows an increment during backpropagation.
func logVisits(n int32) float64 {
	return math.Log(float64(n))
}

// score computes the child's UCT+RAVE selection score against the
// cached log_visits of its parent, per the verbatim formula: the
// exploration term is the product log_N * visits, not the classical
// quotient log_N / visits.
func (n *node) score(parentLogVisits float64) float64 {
	explore := exploreWeight * math.Sqrt(parentLogVisits*float64(n.visits))
	return (float64(n.raveWins) + float64(n.wins) + explore) / (float64(n.raveVisits) + float64(n.visits))
}

// arena is the flat, append-only pool backing a single search. Nodes
// are addressed by int32 index and never relocated or freed
// individually; the whole arena is discarded when the search returns.
type arena struct {
	nodes []node
}

func newArena(capacityHint int) *arena {
	return &arena{nodes: make([]node, 0, capacityHint)}
}

func (a *arena) get(i int32) *node {
	return &a.nodes[i]
}

// expand allocates one child per point in legal, all owned by side,
// and records the range on parent. Returns the index of the first new
// child.
func (a *arena) expand(parent int32, side board.Side, legal bitboard.BB) int32 {
	start := int32(len(a.nodes))
	legal.ForEach(func(i int) bool {
		a.nodes = append(a.nodes, newNode(parent, side, board.Point(i)))
		return true
	})
	p := a.get(parent)
	p.childStart = start
	p.childCount = int32(len(a.nodes)) - start
	return start
}

func (a *arena) children(parent int32) []node {
	p := a.get(parent)
	return a.nodes[p.childStart : p.childStart+p.childCount]
}
