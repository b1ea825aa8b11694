// Package hanabi implements the perfect-information game state model: the
// Hand, the fireworks/discard/token registers, the public and private
// information views, and the turn-by-turn transition function. This is
// the "Env" of spec.md §3-§4.4.
package hanabi

import "github.com/lox/hanabi-pimc/internal/card"

// NumSlots is the fixed hand size for the two-player variant.
const NumSlots = 5

// Slot is one position in a hand: the true card (sentinel if empty) and
// the public hint attached to it.
type Slot struct {
	Card card.Card
	Hint card.Hint
}

// Empty reports whether the slot holds no card.
func (s Slot) Empty() bool {
	return s.Card.IsNone() && s.Hint.IsNone()
}

// EmptySlot is the sentinel value for a hand position with no card left.
func EmptySlot() Slot {
	return Slot{Card: card.NoneCard, Hint: card.NoneHint()}
}

// Hand is a fixed-size array of five slots.
type Hand [NumSlots]Slot

// NewHand builds a hand from dealt cards, each starting with an empty
// (all-bits-set) hint.
func NewHand(cards [NumSlots]card.Card) Hand {
	var h Hand
	for i, c := range cards {
		h[i] = Slot{Card: c, Hint: card.Empty()}
	}
	return h
}

// Cards returns the live cards in the hand, skipping empty slots.
func (h Hand) Cards() []card.Card {
	out := make([]card.Card, 0, NumSlots)
	for _, s := range h {
		if !s.Empty() {
			out = append(out, s.Card)
		}
	}
	return out
}

// HintPatterns returns the distinct hint equivalence classes among live
// slots, in first-seen slot order (spec.md §4.4: "one per distinct hint
// pattern currently held").
func (h Hand) HintPatterns() []card.Hint {
	var patterns []card.Hint
	for _, s := range h {
		if s.Empty() {
			continue
		}
		seen := false
		for _, p := range patterns {
			if p.Equal(s.Hint) {
				seen = true
				break
			}
		}
		if !seen {
			patterns = append(patterns, s.Hint)
		}
	}
	return patterns
}

// SlotsMatching returns the indices of live slots whose hint equals h.
func (h Hand) SlotsMatching(hint card.Hint) []int {
	var idx []int
	for i, s := range h {
		if !s.Empty() && s.Hint.Equal(hint) {
			idx = append(idx, i)
		}
	}
	return idx
}

// HasColor reports whether any live slot holds a card of color c.
func (h Hand) HasColor(c card.Color) bool {
	for _, s := range h {
		if !s.Empty() && s.Card.Color == c {
			return true
		}
	}
	return false
}

// HasRank reports whether any live slot holds a card of rank r.
func (h Hand) HasRank(r card.Rank) bool {
	for _, s := range h {
		if !s.Empty() && s.Card.Rank == r {
			return true
		}
	}
	return false
}
