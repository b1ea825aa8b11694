package hanabi

import (
	"fmt"

	"github.com/lox/hanabi-pimc/internal/card"
)

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	ActionColorHint ActionKind = iota
	ActionRankHint
	ActionPlay
	ActionDiscard
)

// Action is the tagged variant ColorHint(Color) | RankHint(Rank) |
// Play(Hint) | Discard(Hint) from spec.md §6.
type Action struct {
	Kind  ActionKind
	Color card.Color
	Rank  card.Rank
	Hint  card.Hint
}

// ColorHint builds a hint-the-color action.
func ColorHint(c card.Color) Action {
	return Action{Kind: ActionColorHint, Color: c}
}

// RankHint builds a hint-the-rank action.
func RankHint(r card.Rank) Action {
	return Action{Kind: ActionRankHint, Rank: r}
}

// Play builds a play action targeting the slot equivalence class h.
func Play(h card.Hint) Action {
	return Action{Kind: ActionPlay, Hint: h}
}

// Discard builds a discard action targeting the slot equivalence class h.
func Discard(h card.Hint) Action {
	return Action{Kind: ActionDiscard, Hint: h}
}

// String renders the action for logs and test failure output.
func (a Action) String() string {
	switch a.Kind {
	case ActionColorHint:
		return fmt.Sprintf("ColorHint(%s)", a.Color)
	case ActionRankHint:
		return fmt.Sprintf("RankHint(%s)", a.Rank)
	case ActionPlay:
		return fmt.Sprintf("Play(%v)", a.Hint)
	case ActionDiscard:
		return fmt.Sprintf("Discard(%v)", a.Hint)
	default:
		return "Action(?)"
	}
}
