// Package playout implements the heuristic random rollout used to
// finish a game from a tree leaf: repeatedly draw a heuristic legal
// move for the side to move until it has none, recording which points
// each side played as "safe" (two-liberty) moves for RAVE.
package playout

import (
	"github.com/yuanhenglee/go-nogo-mcts/bitboard"
	"github.com/yuanhenglee/go-nogo-mcts/board"
)

// Result is the outcome of a single rollout: the winning side and the
// set of points each side played during "safe" (two-go) moves, used to
// update RAVE statistics on the way back up the tree.
type Result struct {
	Winner board.Side
	Rave   [2]bitboard.BB
}

// Run plays out pos to termination starting with s to move, mutating
// pos in place. The two-go snapshot used to bias move choice is taken
// once per side, from pos as it stands at the start of the rollout
// (spec: this is intentional - it fixes each side's "safe move" frame
// of reference for the whole playout instead of recomputing it every
// ply). Two-go is color-specific (it describes the liberties of the
// group the mover's own stone would join), so Black and White each get
// their own snapshot rather than sharing one.
func Run(pos *board.Position, s board.Side, rng bitboard.Randomizer) Result {
	var twoGoSnapshot [2]bitboard.BB
	_, twoGoSnapshot[board.Black] = pos.LegalMovesAndTwoGo(board.Black)
	_, twoGoSnapshot[board.White] = pos.LegalMovesAndTwoGo(board.White)

	side := s
	var rave [2]bitboard.BB
	for {
		legal := pos.LegalMoves(side)
		if legal.IsEmpty() {
			return Result{Winner: board.Other(side), Rave: rave}
		}

		pt, isTwoGo := board.HeuristicLegalMove(legal, twoGoSnapshot[side], rng)
		pos.MustPlace(side, pt)
		if isTwoGo {
			rave[side].Set(int(pt))
		}
		side = board.Other(side)
	}
}
