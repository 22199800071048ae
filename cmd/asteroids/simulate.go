// cmd/asteroids/simulate.go
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

type simulateOptions struct {
	ticks        int
	fireInterval uint64
	thrust       bool
	turn         string
	draw         bool
}

func newSimulateCmd(a *app) *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation without a window using a scripted pilot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, a, opts)
		},
	}

	cmd.Flags().IntVar(&opts.ticks, "ticks", 3600, "number of ticks to run, 0 runs until the game ends")
	cmd.Flags().Uint64Var(&opts.fireInterval, "fire-interval", 15, "ticks between shots, 0 never fires")
	cmd.Flags().BoolVar(&opts.thrust, "thrust", false, "keep the engine on")
	cmd.Flags().StringVar(&opts.turn, "turn", "left", "turn direction: left, right or none")
	cmd.Flags().BoolVar(&opts.draw, "draw", false, "print the final board")
	return cmd
}

func runSimulate(cmd *cobra.Command, a *app, opts simulateOptions) error {
	pilot := &input.Autopilot{FireInterval: opts.fireInterval}
	switch opts.turn {
	case "left":
		pilot.Hold = append(pilot.Hold, input.RotateLeft)
	case "right":
		pilot.Hold = append(pilot.Hold, input.RotateRight)
	case "none":
	default:
		return fmt.Errorf("invalid --turn %q: must be left, right or none", opts.turn)
	}
	if opts.thrust {
		pilot.Hold = append(pilot.Hold, input.Accelerate)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	game := engine.NewGame(a.cfg, engine.WithLogger(a.logger))
	if err := game.Run(ctx, opts.ticks, pilot); err != nil {
		a.logger.Error(ctx, "simulation interrupted", err, "tick", game.CurrentTick())
		return logging.WrapError(err, "simulation interrupted")
	}

	snap := game.Snapshot()
	a.logger.Info(ctx, "simulation finished",
		"ticks", snap.Tick,
		"status", snap.Status.String(),
		"reason", snap.EndReason,
		"asteroids", snap.TotalAsteroids())

	out := cmd.OutOrStdout()
	if opts.draw {
		board := render.NewTerminalRenderer(64, 24, a.cfg.Viewport.Width, a.cfg.Viewport.Height)
		board.Draw(game.Store)
		if err := board.Present(out); err != nil {
			return err
		}
	}
	return printSummary(out, snap)
}

func printSummary(w io.Writer, snap engine.Snapshot) error {
	_, err := fmt.Fprintf(w,
		"ticks: %d\nstatus: %s\nreason: %s\nship alive: %t\nasteroids: %d (big %d, medium %d, small %d)\nbullets: %d\n",
		snap.Tick,
		snap.Status,
		snap.EndReason,
		snap.ShipAlive,
		snap.TotalAsteroids(),
		snap.Asteroids[entity.SizeBig],
		snap.Asteroids[entity.SizeMedium],
		snap.Asteroids[entity.SizeSmall],
		snap.Bullets,
	)
	return err
}
