package mcts

import (
	"github.com/yuanhenglee/go-nogo-mcts/bitboard"
	"github.com/yuanhenglee/go-nogo-mcts/board"
	"github.com/yuanhenglee/go-nogo-mcts/playout"
)

// selectBestChild returns the index of parent's child with the highest
// score, breaking ties within tieEpsilon of the maximum uniformly at
// random.
func (a *arena) selectBestChild(parent int32, rng bitboard.Randomizer) int32 {
	p := a.get(parent)
	start, count := p.childStart, p.childCount
	parentLogVisits := p.logVisits

	maxScore := a.get(start).score(parentLogVisits)
	for i := start + 1; i < start+count; i++ {
		if s := a.get(i).score(parentLogVisits); s > maxScore {
			maxScore = s
		}
	}

	var tied []int32
	for i := start; i < start+count; i++ {
		if a.get(i).score(parentLogVisits) >= maxScore-tieEpsilon {
			tied = append(tied, i)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[rng.Intn(len(tied))]
}

// backpropagate walks path from the simulated node back to the root,
// updating visit/win counts and, for every sibling at each level whose
// move appears in the opponent's RAVE mask, the RAVE statistics.
func backpropagate(a *arena, path []int32, result playout.Result) {
	for i := len(path) - 1; i >= 0; i-- {
		idx := path[i]
		nd := a.get(idx)
		nd.visits++
		nd.logVisits = logVisits(nd.visits)
		if result.Winner == nd.side {
			nd.wins++
		}

		if nd.childCount == 0 {
			continue
		}
		mask := result.Rave[board.Other(nd.side)]
		start, count := nd.childStart, nd.childCount
		for k := start; k < start+count; k++ {
			child := a.get(k)
			if !mask.Test(int(child.move)) {
				continue
			}
			child.raveVisits++
			if result.Winner == child.side {
				child.raveWins++
			}
		}
	}
}
