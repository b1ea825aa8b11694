// Package collection implements CardCollection, the fixed-size multiset
// of card identities used for the deck, the discard pile, and the
// starting-deck constant that every other tally is subtracted from.
package collection

import (
	"math/rand/v2"

	"github.com/lox/hanabi-pimc/internal/card"
)

// Collection is a multiset over the 25 card identities: counts[i] is the
// number of copies of identity i still held. Invariant: Total equals the
// sum of counts.
type Collection struct {
	counts [card.NumCards]int
	total  int
}

// Starting returns the full 50-card starting deck tally.
func Starting() Collection {
	var c Collection
	for id := card.ID(0); id < card.NumCards; id++ {
		ct := card.FromID(id)
		n := card.StartingCount(ct.Rank)
		c.counts[id] = n
		c.total += n
	}
	return c
}

// Total returns the number of card instances currently held.
func (c *Collection) Total() int {
	return c.total
}

// Count returns the number of copies of identity id currently held.
func (c *Collection) Count(id card.ID) int {
	if id >= card.NumCards {
		return 0
	}
	return c.counts[id]
}

// Add places one more copy of ct into the collection.
func (c *Collection) Add(ct card.Card) {
	if ct.IsNone() {
		return
	}
	c.counts[ct.ID()]++
	c.total++
}

// Remove takes one copy of ct out of the collection. The caller must
// ensure a copy is present; removing from an empty identity underflows
// the tally, which is a programmer error per spec.md §7.
func (c *Collection) Remove(ct card.Card) {
	if ct.IsNone() {
		return
	}
	id := ct.ID()
	if c.counts[id] <= 0 {
		panic("collection: remove of card not present")
	}
	c.counts[id]--
	c.total--
}

// Subtract removes every copy recorded in other from c, elementwise. The
// caller ensures the result stays non-negative.
func (c *Collection) Subtract(other Collection) {
	for id := range c.counts {
		c.counts[id] -= other.counts[id]
		if c.counts[id] < 0 {
			panic("collection: subtract underflowed")
		}
	}
	c.total -= other.total
}

// RemoveHand removes every live card in hand (by identity) from c; used
// to compute the deck as starting − discard − fireworks − both hands.
func (c *Collection) RemoveHand(cards []card.Card) {
	for _, ct := range cards {
		if !ct.IsNone() {
			c.Remove(ct)
		}
	}
}

// Pop draws one card instance uniformly at random over the remaining
// multiset and removes it. It returns card.NoneCard if the collection is
// empty.
func (c *Collection) Pop(rng *rand.Rand) card.Card {
	if c.total <= 0 {
		return card.NoneCard
	}
	target := rng.IntN(c.total)
	cum := 0
	for id := card.ID(0); id < card.NumCards; id++ {
		cum += c.counts[id]
		if target < cum {
			c.counts[id]--
			c.total--
			return card.FromID(id)
		}
	}
	// Unreachable if total is accurate.
	panic("collection: pop failed to find a card")
}

// PopMatch restricts the multiset to identities matching hint h, and if
// that restricted multiset is non-empty, pops one uniformly from it. It
// returns (card, weight, true) on success or (NoneCard, 0, false) if no
// remaining card satisfies h. weight is m/(R+1), where m is the drawn
// identity's remaining count after removal and R is the restricted
// total before removal — an importance-sampling weight, not an exact
// posterior (spec.md §4.2, §9).
func (c *Collection) PopMatch(h card.Hint, rng *rand.Rand) (card.Card, float64, bool) {
	restrictedTotal := 0
	for id := card.ID(0); id < card.NumCards; id++ {
		if c.counts[id] > 0 && h.Matches(card.FromID(id)) {
			restrictedTotal += c.counts[id]
		}
	}
	if restrictedTotal == 0 {
		return card.NoneCard, 0, false
	}

	target := rng.IntN(restrictedTotal)
	cum := 0
	for id := card.ID(0); id < card.NumCards; id++ {
		n := c.counts[id]
		if n <= 0 || !h.Matches(card.FromID(id)) {
			continue
		}
		cum += n
		if target < cum {
			c.counts[id]--
			c.total--
			m := c.counts[id]
			weight := float64(m) / float64(restrictedTotal+1)
			return card.FromID(id), weight, true
		}
	}
	panic("collection: pop_match failed to find a card")
}
