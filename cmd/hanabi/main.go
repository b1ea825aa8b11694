// Command hanabi runs the PIMC solver against itself: a benchmark mode
// that scores many self-played games, and a play mode that narrates one
// game turn by turn. Mirrors cmd/solver/main.go's kong + zerolog wiring.
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/lox/hanabi-pimc/cmd/hanabi/shared"
)

var cli struct {
	Debug  bool   `help:"enable debug logging"`
	Config string `help:"path to a pimc.hcl policy config" default:"pimc.hcl"`

	Bench BenchCmd `cmd:"" help:"self-play N games with the PIMC policy and report a score histogram"`
	Play  PlayCmd  `cmd:"" help:"self-play a single game, narrating each turn"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("hanabi"),
		kong.Description("PIMC rollout solver for two-player Hanabi"),
		kong.UsageOnError(),
	)

	logger := shared.SetupLogger(cli.Debug)
	log.Logger = logger

	var err error
	switch ctx.Command() {
	case "bench":
		err = cli.Bench.Run(context.Background())
	case "play":
		err = cli.Play.Run(context.Background())
	default:
		log.Fatal().Msgf("unknown command: %s", ctx.Command())
	}

	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
