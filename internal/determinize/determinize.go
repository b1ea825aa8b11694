// Package determinize samples a consistent hidden world — the acting
// player's own hand — from public hint constraints plus the hand it can
// already see, producing both a full Env and an importance weight
// (spec.md §4.3).
package determinize

import (
	"math/rand/v2"

	"github.com/lox/hanabi-pimc/internal/card"
	"github.com/lox/hanabi-pimc/internal/collection"
	"github.com/lox/hanabi-pimc/internal/hanabi"
)

// maxRestarts bounds the restart loop. Spec.md §7 treats exhaustion here
// as an unreachable (PublicInfo, PrivateInfo) pair: a programmer error,
// not a runtime condition a well-formed game can hit.
const maxRestarts = 200_000

// Sample builds a full Env consistent with pub and the cards the acting
// player already knows (myPrivate, the opponent's hand). It returns the
// sampled Env and the product of per-slot acceptance fractions, used by
// the PIMC policy as an importance weight.
func Sample(pub hanabi.PublicInfo, myPrivate hanabi.PrivateInfo, rng *rand.Rand) (hanabi.Env, float64) {
	base := collection.Starting()
	base.Subtract(pub.Discard)
	base.Subtract(hanabi.PlayedCards(pub.Fireworks))
	base.RemoveHand(knownCards(myPrivate))

	for attempt := 0; attempt < maxRestarts; attempt++ {
		pool := base
		var own hanabi.PrivateInfo
		weight := 1.0
		ok := true

		for i := 0; i < hanabi.NumSlots; i++ {
			hint := pub.PlayerHints[i]
			if hint.IsNone() {
				own.Cards[i] = card.NoneCard
				continue
			}
			drawn, w, success := pool.PopMatch(hint, rng)
			if !success {
				ok = false
				break
			}
			own.Cards[i] = drawn
			weight *= w
		}

		if ok {
			env := hanabi.New(pub, myPrivate, own)
			return env, weight
		}
	}

	panic("determinize: exhausted restart budget; (PublicInfo, PrivateInfo) pair is unreachable")
}

func knownCards(p hanabi.PrivateInfo) []card.Card {
	return p.Cards[:]
}
