package hanabi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/hanabi-pimc/internal/card"
	"github.com/lox/hanabi-pimc/internal/collection"
)

func TestFutureRewardsEmptyBoard(t *testing.T) {
	var fireworks [card.NumColors]int
	var discard collection.Collection
	assert.Equal(t, 25, FutureRewards(fireworks, &discard))
}

func TestFutureRewardsDiscardScenarios(t *testing.T) {
	var fireworks [card.NumColors]int
	var discard collection.Collection

	discard.Add(card.NewCard(card.White, card.One))
	discard.Add(card.NewCard(card.White, card.One))
	discard.Add(card.NewCard(card.White, card.One))
	assert.Equal(t, 20, FutureRewards(fireworks, &discard))

	discard.Add(card.NewCard(card.Green, card.One))
	assert.Equal(t, 20, FutureRewards(fireworks, &discard))

	discard.Add(card.NewCard(card.Yellow, card.Three))
	discard.Add(card.NewCard(card.Yellow, card.Three))
	assert.Equal(t, 17, FutureRewards(fireworks, &discard))

	discard.Add(card.NewCard(card.Red, card.Five))
	assert.Equal(t, 16, FutureRewards(fireworks, &discard))

	fireworks[card.Blue] = 2
	assert.Equal(t, 14, FutureRewards(fireworks, &discard))
}

func TestRewardBounds(t *testing.T) {
	e := Random(newTestRNG(1))
	r := e.Reward()
	assert.GreaterOrEqual(t, r, 0.0)
	assert.LessOrEqual(t, r, 2.0)
}

func TestRewardDeterministicOnUniquePlay(t *testing.T) {
	// Construct a state where the player's single live slot's hint
	// uniquely identifies the card (a color-and-rank hint pinning it to
	// White-1), so playing it is deterministic regardless of
	// which consistent determinization produced the hand.
	var pub PublicInfo
	pub.BlueTokens = StartingBlueTokens
	pub.BlackTokens = StartingBlackTokens
	for i := range pub.PlayerHints {
		pub.PlayerHints[i] = card.NoneHint()
		pub.OpponentHints[i] = card.NoneHint()
	}
	pub.PlayerHints[0] = card.Empty().SetTrueColor(card.White).SetTrueRank(card.One)

	var myPrivate, oppPrivate PrivateInfo
	oppPrivate.Cards[0] = card.NewCard(card.White, card.One)

	env := New(pub, myPrivate, oppPrivate)

	rng := newTestRNG(7)
	env.Step(Play(pub.PlayerHints[0]), rng)
	// after swap, the played result lives in the opponent's former seat
	assert.Equal(t, 1, FireworksTotal(env.Fireworks))
	closedForm := 1.0/25.0 + (float64(env.BlackTokens-1)/3.0)*(float64(FutureRewards(env.Fireworks, &env.Discard))/25.0)
	assert.InDelta(t, closedForm, env.Reward(), 1e-9)
}
