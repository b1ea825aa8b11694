package hanabi

import (
	"math/rand/v2"

	"github.com/lox/hanabi-pimc/internal/card"
	"github.com/lox/hanabi-pimc/internal/collection"
)

// StartingBlueTokens and StartingBlackTokens are the per-game token
// supplies at deal time (spec.md §3, §9: black==1 is the terminal
// convention used here, reached after three misplays from a starting
// supply of four).
const (
	StartingBlueTokens  = 8
	StartingBlackTokens = 4
)

// Env is the full perfect-information game state. "Player" always names
// the seat about to act; after every Step the two hands swap, so all
// per-seat logic can be written as if from the acting player's side
// (spec.md §4.4, §9).
type Env struct {
	Player   Hand
	Opponent Hand

	Deck    collection.Collection
	Discard collection.Collection

	BlueTokens  int
	BlackTokens int
	Fireworks   [card.NumColors]int

	LastRound           bool
	LastRoundTurnsTaken int
}

// Random deals a fresh game: a shuffled 50-card deck, five cards to each
// seat, full token supplies, and empty hints.
func Random(rng *rand.Rand) Env {
	deck := collection.Starting()

	var playerCards, opponentCards [NumSlots]card.Card
	for i := 0; i < NumSlots; i++ {
		playerCards[i] = deck.Pop(rng)
	}
	for i := 0; i < NumSlots; i++ {
		opponentCards[i] = deck.Pop(rng)
	}

	return Env{
		Player:      NewHand(playerCards),
		Opponent:    NewHand(opponentCards),
		Deck:        deck,
		BlueTokens:  StartingBlueTokens,
		BlackTokens: StartingBlackTokens,
	}
}

// New reconstructs an Env from a public view plus the two seats' private
// card information. myPrivate supplies the opponent's cards (what the
// acting player sees); oppPrivate supplies the acting player's own
// cards (what the opponent sees). The deck is whatever starting−discard
// −fireworks−both hands leaves behind.
func New(pub PublicInfo, myPrivate, oppPrivate PrivateInfo) Env {
	var player, opponent Hand
	for i := 0; i < NumSlots; i++ {
		player[i] = Slot{Card: oppPrivate.Cards[i], Hint: pub.PlayerHints[i]}
		opponent[i] = Slot{Card: myPrivate.Cards[i], Hint: pub.OpponentHints[i]}
	}

	deck := collection.Starting()
	deck.Subtract(pub.Discard)
	deck.Subtract(PlayedCards(pub.Fireworks))
	deck.RemoveHand(player.Cards())
	deck.RemoveHand(opponent.Cards())

	return Env{
		Player:              player,
		Opponent:            opponent,
		Deck:                deck,
		Discard:             pub.Discard,
		BlueTokens:          pub.BlueTokens,
		BlackTokens:         pub.BlackTokens,
		Fireworks:           pub.Fireworks,
		LastRound:           pub.LastRound,
		LastRoundTurnsTaken: pub.LastRoundTurnsTaken,
	}
}

// PublicInfo projects e onto the information visible to both seats.
func (e *Env) PublicInfo() PublicInfo {
	return PublicInfo{
		PlayerHints:          hintsOf(e.Player),
		OpponentHints:        hintsOf(e.Opponent),
		Discard:              e.Discard,
		BlueTokens:           e.BlueTokens,
		BlackTokens:          e.BlackTokens,
		Fireworks:            e.Fireworks,
		LastRound:            e.LastRound,
		LastRoundTurnsTaken:  e.LastRoundTurnsTaken,
	}
}

// PrivateInfo projects e onto what seat can see: SeatPlayer sees the
// opponent's cards, SeatOpponent sees the player's cards.
func (e *Env) PrivateInfo(seat Seat) PrivateInfo {
	if seat == SeatPlayer {
		return privateInfoFrom(e.Opponent)
	}
	return privateInfoFrom(e.Player)
}

// Actions enumerates the acting player's legal moves (spec.md §4.4).
func (e *Env) Actions() []Action {
	actions := make([]Action, 0, 4*NumSlots)

	for _, h := range e.Player.HintPatterns() {
		actions = append(actions, Play(h))
	}
	if e.BlueTokens < StartingBlueTokens {
		for _, h := range e.Player.HintPatterns() {
			actions = append(actions, Discard(h))
		}
	}
	if e.BlueTokens > 0 {
		for c := card.Color(0); c < card.NumColors; c++ {
			if e.Opponent.HasColor(c) {
				actions = append(actions, ColorHint(c))
			}
		}
		for r := card.One; r <= card.Five; r++ {
			if e.Opponent.HasRank(r) {
				actions = append(actions, RankHint(r))
			}
		}
	}
	return actions
}

// Step applies action to e, mutating it in place, and then swaps seats.
// The caller must ensure e is not terminal and action is legal; both are
// undefined behavior otherwise (spec.md §7).
func (e *Env) Step(action Action, rng *rand.Rand) {
	switch action.Kind {
	case ActionColorHint:
		e.applyColorHint(action.Color)
	case ActionRankHint:
		e.applyRankHint(action.Rank)
	case ActionPlay:
		e.applyPlay(action.Hint, rng)
	case ActionDiscard:
		e.applyDiscard(action.Hint, rng)
	}

	if e.LastRound {
		e.LastRoundTurnsTaken++
	}

	e.Player, e.Opponent = e.Opponent, e.Player
}

func (e *Env) applyColorHint(c card.Color) {
	for i, s := range e.Opponent {
		if s.Empty() {
			continue
		}
		if s.Card.Color == c {
			e.Opponent[i].Hint = s.Hint.SetTrueColor(c)
		} else {
			e.Opponent[i].Hint = s.Hint.DisableColor(c)
		}
	}
	e.BlueTokens--
}

func (e *Env) applyRankHint(r card.Rank) {
	for i, s := range e.Opponent {
		if s.Empty() {
			continue
		}
		if s.Card.Rank == r {
			e.Opponent[i].Hint = s.Hint.SetTrueRank(r)
		} else {
			e.Opponent[i].Hint = s.Hint.DisableRank(r)
		}
	}
	e.BlueTokens--
}

func (e *Env) applyPlay(h card.Hint, rng *rand.Rand) {
	candidates := e.Player.SlotsMatching(h)
	slot := candidates[rng.IntN(len(candidates))]
	played := e.Player[slot].Card

	if e.Fireworks[played.Color] == int(played.Rank)-1 {
		e.Fireworks[played.Color]++
		if e.Fireworks[played.Color] == card.NumRanks {
			if e.BlueTokens < StartingBlueTokens {
				e.BlueTokens++
			}
		}
	} else {
		e.Discard.Add(played)
		e.BlackTokens--
	}

	e.drawInto(slot, rng)
}

func (e *Env) applyDiscard(h card.Hint, rng *rand.Rand) {
	candidates := e.Player.SlotsMatching(h)
	slot := candidates[rng.IntN(len(candidates))]
	e.Discard.Add(e.Player[slot].Card)
	if e.BlueTokens < StartingBlueTokens {
		e.BlueTokens++
	}
	e.drawInto(slot, rng)
}

func (e *Env) drawInto(slot int, rng *rand.Rand) {
	if e.Deck.Total() == 0 {
		e.LastRound = true
		e.Player[slot] = EmptySlot()
		return
	}
	e.Player[slot] = Slot{Card: e.Deck.Pop(rng), Hint: card.Empty()}
}

// IsOver reports whether e has reached a terminal state: a bust, a
// perfect score, or the final round having run its course.
func (e *Env) IsOver() bool {
	if e.BlackTokens == 1 {
		return true
	}
	if FireworksTotal(e.Fireworks) == card.NumColors*card.NumRanks {
		return true
	}
	if e.Deck.Total() == 0 && e.LastRound && e.LastRoundTurnsTaken >= 2 {
		return true
	}
	return false
}

// Score is the sum of the five firework heights, in [0, 25].
func (e *Env) Score() int {
	return FireworksTotal(e.Fireworks)
}
