package hanabi

import (
	"github.com/lox/hanabi-pimc/internal/card"
	"github.com/lox/hanabi-pimc/internal/collection"
)

// FutureRewards computes an upper bound on the fireworks still
// achievable beyond what is already played, given the current fireworks
// heights and discard pile. For each color it counts ranks above the
// current height for which at least one copy has not been discarded,
// stopping at the first rank whose every copy is gone — per spec.md §9
// this saturates a color to zero further progress once a required copy
// is missing, rather than skipping the gap and counting higher ranks.
func FutureRewards(fireworks [card.NumColors]int, discard *collection.Collection) int {
	total := 0
	for color := card.Color(0); color < card.NumColors; color++ {
		for r := fireworks[color] + 1; r <= card.NumRanks; r++ {
			rank := card.Rank(r)
			ct := card.NewCard(color, rank)
			if discard.Count(ct.ID()) >= card.StartingCount(rank) {
				break
			}
			total++
		}
	}
	return total
}

// Reward is the heuristic value used by rollouts: current score plus a
// remaining-life-discounted share of the still-achievable fireworks
// (spec.md §4.5). It reads naturally in a non-terminal position too,
// since rollouts only ever score terminal states but the formula places
// no requirement on IsOver.
func (e *Env) Reward() float64 {
	score := float64(e.Score()) / float64(card.NumColors*card.NumRanks)
	future := FutureRewards(e.Fireworks, &e.Discard)
	lifeShare := float64(e.BlackTokens-1) / float64(StartingBlackTokens-1)
	return score + lifeShare*(float64(future)/float64(card.NumColors*card.NumRanks))
}
