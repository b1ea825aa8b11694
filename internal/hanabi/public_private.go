package hanabi

import (
	"github.com/lox/hanabi-pimc/internal/card"
	"github.com/lox/hanabi-pimc/internal/collection"
)

// Seat names which hand a PrivateInfo view is drawn from. SeatPlayer asks
// for what the acting player can see (the opponent's hand); SeatOpponent
// asks for what the opponent can see (the acting player's hand).
type Seat bool

const (
	SeatPlayer   Seat = true
	SeatOpponent Seat = false
)

// PublicInfo is everything about an Env that carries no hidden cards:
// both hands' hints, the discard pile, tokens, fireworks, and the
// last-round flags. It is what a determinization must reproduce exactly.
type PublicInfo struct {
	PlayerHints   [NumSlots]card.Hint
	OpponentHints [NumSlots]card.Hint
	Discard       collection.Collection
	BlueTokens    int
	BlackTokens   int
	Fireworks     [card.NumColors]int
	LastRound     bool
	LastRoundTurnsTaken int
}

// PrivateInfo is the one piece of hidden information a seat actually
// holds: the cards of the hand it can see (never its own).
type PrivateInfo struct {
	Cards [NumSlots]card.Card
}

// privateInfoFrom extracts the cards of h into a PrivateInfo view.
func privateInfoFrom(h Hand) PrivateInfo {
	var p PrivateInfo
	for i, s := range h {
		p.Cards[i] = s.Card
	}
	return p
}

// hintsOf extracts the hint half of a hand.
func hintsOf(h Hand) [NumSlots]card.Hint {
	var out [NumSlots]card.Hint
	for i, s := range h {
		out[i] = s.Hint
	}
	return out
}

// PlayedCards returns the multiset of cards already committed to the
// fireworks: for each color, one copy of every rank from 1 up to the
// current firework height.
func PlayedCards(fireworks [card.NumColors]int) collection.Collection {
	var c collection.Collection
	for color := card.Color(0); color < card.NumColors; color++ {
		height := fireworks[color]
		for r := 1; r <= height; r++ {
			c.Add(card.NewCard(color, card.Rank(r)))
		}
	}
	return c
}

// FireworksTotal sums the played-card count across all five colors.
func FireworksTotal(fireworks [card.NumColors]int) int {
	total := 0
	for _, h := range fireworks {
		total += h
	}
	return total
}
