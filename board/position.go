package board

import (
	"fmt"

	"github.com/yuanhenglee/go-nogo-mcts/bitboard"
)

// Position is the NoGo board state: two disjoint stone sets and enough
// union-find bookkeeping to answer liberty and legality questions in
// constant time per point without walking the whole board.
//
// Groups are tracked with a path-compressed union-find over occupied
// points: parent[i] == -1 means i is empty; parent[i] == i means i is a
// group root; otherwise parent[i] points toward the root. liberties[r]
// is only meaningful when r is a root.
type Position struct {
	stones    [2]bitboard.BB
	parent    [bitboard.Size]int32
	liberties [bitboard.Size]bitboard.BB
}

// NewPosition returns an empty 9x9 board.
func NewPosition() *Position {
	p := &Position{}
	for i := range p.parent {
		p.parent[i] = -1
	}
	return p
}

// Clone returns an independent mutable copy of p. Because every field is
// a fixed-size array, this is a single value copy with no further
// allocation bookkeeping required.
func (p *Position) Clone() *Position {
	next := *p
	return &next
}

// Stones returns the set of points occupied by s.
func (p *Position) Stones(s Side) bitboard.BB {
	return p.stones[s]
}

// Occupied returns the set of all occupied points.
func (p *Position) Occupied() bitboard.BB {
	return p.stones[Black].Union(p.stones[White])
}

// Empty returns the set of unoccupied points.
func (p *Position) Empty() bitboard.BB {
	return p.Occupied().Complement()
}

func (p *Position) find(i int) int {
	root := i
	for p.parent[root] != int32(root) {
		root = int(p.parent[root])
	}
	for p.parent[i] != int32(root) {
		next := p.parent[i]
		p.parent[i] = int32(root)
		i = int(next)
	}
	return root
}

// pointNeighbors writes the up to 4 orthogonal neighbor indices of i into
// ns and returns how many were written. No allocation.
func pointNeighbors(i int) (ns [4]int, n int) {
	x, y := i%bitboard.Width, i/bitboard.Width
	if y > 0 {
		ns[n] = i - bitboard.Width
		n++
	}
	if y < bitboard.Width-1 {
		ns[n] = i + bitboard.Width
		n++
	}
	if x > 0 {
		ns[n] = i - 1
		n++
	}
	if x < bitboard.Width-1 {
		ns[n] = i + 1
		n++
	}
	return ns, n
}

func containsRoot(roots [4]int, n int, r int) bool {
	for k := 0; k < n; k++ {
		if roots[k] == r {
			return true
		}
	}
	return false
}

// evaluatePoint classifies empty point i for side s: whether it is
// legal, and if so what liberties the resulting s-group would have.
// Implements spec.md §4.2's final test: empty, no adjacent enemy group
// reduced to zero liberties (no capture - forbidden under NoGo), and the
// merged friendly group left with at least one liberty (no
// self-capture).
func (p *Position) evaluatePoint(i int, s Side) (legal bool, newLiberties bitboard.BB) {
	other := Other(s)
	ns, n := pointNeighbors(i)

	var friendlyRoots, enemyRoots [4]int
	nf, ne := 0, 0
	for k := 0; k < n; k++ {
		j := ns[k]
		if p.stones[s].Test(j) {
			r := p.find(j)
			if !containsRoot(friendlyRoots, nf, r) {
				friendlyRoots[nf] = r
				nf++
			}
		} else if p.stones[other].Test(j) {
			r := p.find(j)
			if !containsRoot(enemyRoots, ne, r) {
				enemyRoots[ne] = r
				ne++
			}
		}
	}

	// Capture check: any adjacent enemy group whose only liberty is i
	// would be captured by this placement. Captures are illegal.
	for k := 0; k < ne; k++ {
		libs := p.liberties[enemyRoots[k]]
		if libs.PopCount() == 1 && libs.Test(i) {
			return false, bitboard.Empty
		}
	}

	// Self-capture check: union the empty neighbors of i with every
	// friendly group's liberties, then remove i itself (now occupied).
	var merged bitboard.BB
	for k := 0; k < n; k++ {
		j := ns[k]
		if !p.stones[Black].Test(j) && !p.stones[White].Test(j) {
			merged.Set(j)
		}
	}
	for k := 0; k < nf; k++ {
		merged = merged.Union(p.liberties[friendlyRoots[k]])
	}
	merged.Clear(i)

	if merged.IsEmpty() {
		return false, bitboard.Empty
	}
	return true, merged
}

// LegalMoves returns the set of points where s may legally play.
func (p *Position) LegalMoves(s Side) bitboard.BB {
	legal, _ := p.legalAndTwoGo(s)
	return legal
}

// LegalMovesAndTwoGo returns both the legal-move set and the two-go
// subset for s in a single pass. Exported for callers (the playout
// policy) that need the two-go snapshot without a second traversal.
func (p *Position) LegalMovesAndTwoGo(s Side) (legal, twoGo bitboard.BB) {
	return p.legalAndTwoGo(s)
}

// legalAndTwoGo computes, in one pass over the empty points, both the
// legal-move set for s and the "two-go" subset: legal points whose
// resulting group would have at least two liberties (spec.md §4.2's
// heuristic safety filter used by the playout policy).
func (p *Position) legalAndTwoGo(s Side) (legal, twoGo bitboard.BB) {
	p.Empty().ForEach(func(i int) bool {
		ok, libs := p.evaluatePoint(i, s)
		if ok {
			legal.Set(i)
			if libs.PopCount() >= 2 {
				twoGo.Set(i)
			}
		}
		return true
	})
	return legal, twoGo
}

// HasLegalMove reports whether s has any legal point.
func (p *Position) HasLegalMove(s Side) bool {
	return !p.LegalMoves(s).IsEmpty()
}

// HeuristicLegalMove draws a move for s from legal points, preferring
// "two-go" points (those that do not fill the mover's own eye space)
// when any exist, per spec.md §4.2. twoGoSnapshot is the two-go mask to
// use; playouts compute it once at the start of the rollout rather than
// recomputing it every ply (spec.md §4.3's intentional bias). Returns
// the chosen point and whether it came from the two-go subset.
func HeuristicLegalMove(legal, twoGoSnapshot bitboard.BB, rng bitboard.Randomizer) (Point, bool) {
	safe := legal.Intersect(twoGoSnapshot)
	if !safe.IsEmpty() {
		return Point(bitboard.RandomBit(safe, rng)), true
	}
	if legal.IsEmpty() {
		panic("board: HeuristicLegalMove called with no legal moves")
	}
	return Point(bitboard.RandomBit(legal, rng)), false
}

// Place applies a placement of s at pt, updating stone sets, group
// structure, and neighboring liberties. Returns an error if pt is not a
// legal point for s.
func (p *Position) Place(s Side, pt Point) error {
	i := int(pt)
	if i < 0 || i >= bitboard.Size {
		return fmt.Errorf("board: point %v out of range", pt)
	}
	if p.stones[Black].Test(i) || p.stones[White].Test(i) {
		return fmt.Errorf("board: point %v is occupied", pt)
	}

	legal, newLiberties := p.evaluatePoint(i, s)
	if !legal {
		return fmt.Errorf("board: %v is not a legal move for %v", pt, s)
	}

	other := Other(s)
	ns, n := pointNeighbors(i)
	var friendlyRoots, enemyRoots [4]int
	nf, ne := 0, 0
	for k := 0; k < n; k++ {
		j := ns[k]
		if p.stones[s].Test(j) {
			r := p.find(j)
			if !containsRoot(friendlyRoots, nf, r) {
				friendlyRoots[nf] = r
				nf++
			}
		} else if p.stones[other].Test(j) {
			r := p.find(j)
			if !containsRoot(enemyRoots, ne, r) {
				enemyRoots[ne] = r
				ne++
			}
		}
	}

	p.stones[s].Set(i)
	p.parent[i] = int32(i)
	for k := 0; k < nf; k++ {
		p.parent[friendlyRoots[k]] = int32(i)
	}
	p.liberties[i] = newLiberties

	for k := 0; k < ne; k++ {
		r := enemyRoots[k]
		libs := p.liberties[r]
		libs.Clear(i)
		p.liberties[r] = libs
	}

	return nil
}

// MustPlace applies Place and panics on error. Used on paths where the
// caller has already established legality (tree selection/expansion);
// an error here is a programmer error per spec.md §7.
func (p *Position) MustPlace(s Side, pt Point) {
	if err := p.Place(s, pt); err != nil {
		panic(err)
	}
}
