// Package card defines the value types shared by every other package in
// this module: a card identity (color and rank) and the per-slot hint
// bitmasks that encode what a player has been told about a card.
package card

import "fmt"

// Color is one of the five Hanabi suits.
type Color uint8

const (
	White Color = iota
	Red
	Blue
	Yellow
	Green
	numColors = 5
)

// String returns the color as a single uppercase letter.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Rank is a card's printed number, 1 through 5.
type Rank uint8

const (
	One Rank = iota + 1
	Two
	Three
	Four
	Five
	numRanks = 5
)

// String returns the rank as a single digit.
func (r Rank) String() string {
	if r < One || r > Five {
		return "?"
	}
	return fmt.Sprintf("%d", int(r))
}

// NumColors and NumRanks are the fixed dimensions of the 25-identity deck.
const (
	NumColors = numColors
	NumRanks  = numRanks
	NumCards  = numColors * numRanks
)

// ID is a card identity packed into [0, NumCards), plus a sentinel value
// for "no card" (an empty hand slot).
type ID uint8

// None is the sentinel identity for an empty hand slot.
const None ID = NumCards + 1

// Card is a single card identity: a color and a rank.
type Card struct {
	Color Color
	Rank  Rank
}

// IsNone reports whether c is the empty-slot sentinel.
func (c Card) IsNone() bool {
	return c.Rank == 0
}

// NoneCard is the sentinel card occupying an empty hand slot.
var NoneCard = Card{}

// NewCard builds a card from a color and rank.
func NewCard(color Color, rank Rank) Card {
	return Card{Color: color, Rank: rank}
}

// ID encodes c as an integer in [0, NumCards), or None if c is the empty
// sentinel.
func (c Card) ID() ID {
	if c.IsNone() {
		return None
	}
	return ID(int(c.Color)*numRanks + int(c.Rank) - 1)
}

// FromID decodes an ID in [0, NumCards) back into a Card. It panics if id
// is the None sentinel or out of range; callers must check id != None
// first, matching the programmer-error contract in spec.md §7.
func FromID(id ID) Card {
	if id >= NumCards {
		panic(fmt.Sprintf("card: id %d out of range", id))
	}
	return Card{
		Color: Color(int(id) / numRanks),
		Rank:  Rank(int(id)%numRanks + 1),
	}
}

// String renders the card as "<color><rank>", e.g. "R3", or "--" for the
// empty sentinel.
func (c Card) String() string {
	if c.IsNone() {
		return "--"
	}
	return fmt.Sprintf("%s%s", c.Color, c.Rank)
}

// StartingCount is the number of copies of each rank present in a fresh
// deck: three 1s, two each of 2/3/4, one 5.
func StartingCount(r Rank) int {
	switch r {
	case One:
		return 3
	case Five:
		return 1
	default:
		return 2
	}
}
