// Package pimc implements the Perfect-Information Monte Carlo decision
// loop: sample a world, commit to a random first action, roll the rest
// of the game out randomly, and aggregate weighted rewards per first
// action (spec.md §4.6).
package pimc

import (
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lox/hanabi-pimc/internal/determinize"
	"github.com/lox/hanabi-pimc/internal/hanabi"
	"github.com/lox/hanabi-pimc/internal/randutil"
)

// stat accumulates the weighted-reward sum and visit count for one
// candidate first action.
type stat struct {
	sum    float64
	visits int
}

// Decide runs cfg.Rollouts PIMC rollouts from the acting seat's
// information set and returns the action with the highest total
// weighted reward (spec.md §4.6). Determinism contract: for a fixed
// cfg.Seed and cfg.Workers, Decide returns the same action every time,
// because each worker's RNG is derived solely from cfg.Seed and its
// worker index, and the final reduction sorts actions into a canonical
// order before comparing sums (spec.md §5) rather than relying on
// incidental map- or goroutine-completion order.
func Decide(pub hanabi.PublicInfo, myPrivate hanabi.PrivateInfo, cfg Config) hanabi.Action {
	if err := cfg.Validate(); err != nil {
		panic("pimc: " + err.Error())
	}

	workers := cfg.workerCount()
	shares := distribute(cfg.Rollouts, workers)
	partials := make([]map[hanabi.Action]stat, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			rng := randutil.New(randutil.Derive(cfg.Seed, w))
			partials[w] = rollouts(pub, myPrivate, shares[w], rng)
			return nil
		})
	}
	_ = g.Wait() // rollouts never fail; errgroup is used purely for fan-out.

	totals := make(map[hanabi.Action]stat)
	for _, partial := range partials {
		for action, s := range partial {
			merged := totals[action]
			merged.sum += s.sum
			merged.visits += s.visits
			totals[action] = merged
		}
	}
	if len(totals) == 0 {
		panic("pimc: aggregator saw zero actions; unreachable from a well-formed non-terminal state")
	}

	actions := make([]hanabi.Action, 0, len(totals))
	for a := range totals {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actionLess(actions[i], actions[j]) })

	best := actions[0]
	bestSum := totals[best].sum
	for _, a := range actions[1:] {
		if totals[a].sum > bestSum {
			best = a
			bestSum = totals[a].sum
		}
	}
	return best
}

// rollouts runs n independent PIMC rollouts, returning this worker's
// partial per-action statistics.
func rollouts(pub hanabi.PublicInfo, myPrivate hanabi.PrivateInfo, n int, rng *rand.Rand) map[hanabi.Action]stat {
	acc := make(map[hanabi.Action]stat)
	for i := 0; i < n; i++ {
		env, weight := determinize.Sample(pub, myPrivate, rng)

		actions := env.Actions()
		first := actions[rng.IntN(len(actions))]
		env.Step(first, rng)

		for !env.IsOver() {
			legal := env.Actions()
			choice := legal[rng.IntN(len(legal))]
			env.Step(choice, rng)
		}

		s := acc[first]
		s.sum += weight * env.Reward()
		s.visits++
		acc[first] = s
	}
	return acc
}

// distribute splits n rollouts across workers as evenly as possible,
// front-loading the remainder onto the lowest-indexed workers so the
// split itself is deterministic.
func distribute(n, workers int) []int {
	shares := make([]int, workers)
	base := n / workers
	remainder := n % workers
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}

// actionLess imposes a total, deterministic order over Action values so
// the final score comparison never depends on map iteration order.
func actionLess(a, b hanabi.Action) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case hanabi.ActionColorHint:
		return a.Color < b.Color
	case hanabi.ActionRankHint:
		return a.Rank < b.Rank
	default:
		if a.Hint.ColorMask != b.Hint.ColorMask {
			return a.Hint.ColorMask < b.Hint.ColorMask
		}
		return a.Hint.RankMask < b.Hint.RankMask
	}
}
