package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/lox/hanabi-pimc/internal/config"
	"github.com/lox/hanabi-pimc/internal/display"
	"github.com/lox/hanabi-pimc/internal/hanabi"
	"github.com/lox/hanabi-pimc/internal/pimc"
	"github.com/lox/hanabi-pimc/internal/randutil"
)

// PlayCmd self-plays a single game, printing the board and the chosen
// action after every turn.
type PlayCmd struct {
	Seed int64 `help:"random seed for the deal and all decisions" default:"0"`
}

func (cmd *PlayCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "hanabi",
	})

	rng := randutil.New(cmd.Seed)
	env := hanabi.Random(rng)

	turn := 0
	for !env.IsOver() {
		fmt.Println(display.Render(env.PublicInfo()))

		pub := env.PublicInfo()
		known := env.PrivateInfo(hanabi.SeatPlayer)
		action := pimc.Decide(pub, known, cfg)

		logger.Info("turn", "number", turn, "action", action.String())
		env.Step(action, rng)
		turn++
	}

	fmt.Println(display.Render(env.PublicInfo()))
	logger.Info("game over", "score", env.Score(), "turns", turn)
	return nil
}
