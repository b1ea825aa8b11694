package hanabi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanabi-pimc/internal/card"
)

func liveSlots(h Hand) int {
	n := 0
	for _, s := range h {
		if !s.Empty() {
			n++
		}
	}
	return n
}

func assertConservation(t *testing.T, e *Env) {
	t.Helper()
	total := e.Discard.Total() + e.Deck.Total() + liveSlots(e.Player) + liveSlots(e.Opponent) + FireworksTotal(e.Fireworks)
	assert.Equal(t, 50, total)
}

func assertHintSoundness(t *testing.T, e *Env) {
	t.Helper()
	for _, s := range e.Player {
		if !s.Empty() {
			assert.True(t, s.Hint.Matches(s.Card), "player slot hint %v does not match card %v", s.Hint, s.Card)
		}
	}
	for _, s := range e.Opponent {
		if !s.Empty() {
			assert.True(t, s.Hint.Matches(s.Card), "opponent slot hint %v does not match card %v", s.Hint, s.Card)
		}
	}
}

func TestRandomDealConservation(t *testing.T) {
	e := Random(newTestRNG(1))
	assertConservation(t, &e)
	assertHintSoundness(t, &e)
	assert.Equal(t, StartingBlueTokens, e.BlueTokens)
	assert.Equal(t, StartingBlackTokens, e.BlackTokens)
}

func TestRandomPlaythroughTerminates(t *testing.T) {
	rng := newTestRNG(2)
	e := Random(rng)

	turns := 0
	// Hint turns never draw, so the deck-size+2 bound that holds for a
	// play/discard-only playthrough doesn't bound a random one; this is
	// a generous empirical ceiling for this seed, not a formal proof.
	maxTurns := 500
	for !e.IsOver() {
		actions := e.Actions()
		require.NotEmpty(t, actions)
		choice := actions[rng.IntN(len(actions))]
		e.Step(choice, rng)
		assertConservation(t, &e)
		assertHintSoundness(t, &e)

		turns++
		require.Less(t, turns, maxTurns, "playthrough did not terminate")
	}

	score := e.Score()
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 25)
}

func TestHintExhaustionLeavesOnlyPlayDiscard(t *testing.T) {
	e := Random(newTestRNG(3))
	e.BlueTokens = 0

	for _, a := range e.Actions() {
		assert.NotEqual(t, ActionColorHint, a.Kind)
		assert.NotEqual(t, ActionRankHint, a.Kind)
	}
}

func TestDiscardDisabledAtMaxBlueTokens(t *testing.T) {
	e := Random(newTestRNG(4))
	e.BlueTokens = StartingBlueTokens

	for _, a := range e.Actions() {
		assert.NotEqual(t, ActionDiscard, a.Kind)
	}
}

func TestBlueTokenSaturatesOnFireworkCompletion(t *testing.T) {
	var pub PublicInfo
	pub.BlueTokens = StartingBlueTokens
	pub.BlackTokens = StartingBlackTokens
	for i := range pub.PlayerHints {
		pub.PlayerHints[i] = card.NoneHint()
		pub.OpponentHints[i] = card.NoneHint()
	}
	pub.Fireworks[card.Red] = 4
	pub.PlayerHints[0] = card.Empty().SetTrueColor(card.Red).SetTrueRank(card.Five)

	var myPrivate, oppPrivate PrivateInfo
	oppPrivate.Cards[0] = card.NewCard(card.Red, card.Five)

	env := New(pub, myPrivate, oppPrivate)
	rng := newTestRNG(5)
	env.Step(Play(pub.PlayerHints[0]), rng)

	assert.Equal(t, StartingBlueTokens, env.BlueTokens)
	assert.Equal(t, card.NumRanks, env.Fireworks[card.Red])
}

func TestFinalRoundEndsAfterTwoPostDeckTurns(t *testing.T) {
	e := Random(newTestRNG(6))
	// Drain the deck by repeatedly discarding.
	for e.Deck.Total() > 0 {
		actions := e.Actions()
		var discardAction *Action
		for i := range actions {
			if actions[i].Kind == ActionDiscard {
				discardAction = &actions[i]
				break
			}
		}
		if discardAction == nil {
			e.BlueTokens = 0 // force a discard to become legal
			continue
		}
		e.Step(*discardAction, newTestRNG(uint64(e.Deck.Total())+100))
		if e.IsOver() {
			return
		}
	}

	// The deck just hit 0 on the draw that refilled the discarding seat's
	// slot; LastRound only flips on the next turn's draw-from-empty.
	require.False(t, e.LastRound)
	require.Equal(t, 0, e.LastRoundTurnsTaken)

	actions := e.Actions()
	require.NotEmpty(t, actions)
	e.Step(actions[0], newTestRNG(11))
	require.True(t, e.LastRound)
	require.False(t, e.IsOver())
	require.Equal(t, 1, e.LastRoundTurnsTaken)

	actions = e.Actions()
	require.NotEmpty(t, actions)
	e.Step(actions[0], newTestRNG(12))
	assert.True(t, e.IsOver())
	assert.Equal(t, 2, e.LastRoundTurnsTaken)
}

func TestNewReconstructsPublicInfo(t *testing.T) {
	e := Random(newTestRNG(8))
	pub := e.PublicInfo()
	myPrivate := e.PrivateInfo(SeatPlayer)
	oppPrivate := e.PrivateInfo(SeatOpponent)

	rebuilt := New(pub, myPrivate, oppPrivate)
	assert.Equal(t, pub, rebuilt.PublicInfo())
	assert.Equal(t, oppPrivate, rebuilt.PrivateInfo(SeatOpponent))
	assert.Equal(t, myPrivate, rebuilt.PrivateInfo(SeatPlayer))
}
