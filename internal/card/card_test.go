package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardIDRoundTrip(t *testing.T) {
	for c := Color(0); c < NumColors; c++ {
		for r := One; r <= Five; r++ {
			card := NewCard(c, r)
			id := card.ID()
			require.Less(t, int(id), NumCards)
			assert.Equal(t, card, FromID(id))
		}
	}
}

func TestCardIDDistinct(t *testing.T) {
	seen := make(map[ID]Card)
	for c := Color(0); c < NumColors; c++ {
		for r := One; r <= Five; r++ {
			card := NewCard(c, r)
			id := card.ID()
			if prior, ok := seen[id]; ok {
				t.Fatalf("id %d assigned to both %v and %v", id, prior, card)
			}
			seen[id] = card
		}
	}
	assert.Len(t, seen, NumCards)
}

func TestNoneCard(t *testing.T) {
	assert.True(t, NoneCard.IsNone())
	assert.Equal(t, None, NoneCard.ID())
	assert.Equal(t, "--", NoneCard.String())
}

func TestStartingCount(t *testing.T) {
	total := 0
	for r := One; r <= Five; r++ {
		total += StartingCount(r) * NumColors
	}
	assert.Equal(t, 50, total)
	assert.Equal(t, 3, StartingCount(One))
	assert.Equal(t, 1, StartingCount(Five))
	assert.Equal(t, 2, StartingCount(Three))
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "R3", NewCard(Red, Three).String())
	assert.Equal(t, "W1", NewCard(White, One).String())
}
