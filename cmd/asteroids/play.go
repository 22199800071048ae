// cmd/asteroids/play.go
package main

import (
	"github.com/EngoEngine/engo"
	"github.com/spf13/cobra"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

func newPlayCmd(a *app) *cobra.Command {
	var fullscreen bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and play",
		RunE: func(cmd *cobra.Command, args []string) error {
			game := engine.NewGame(a.cfg, engine.WithLogger(a.logger))
			scene := engorender.NewGameScene(game, a.logger)

			opts := engo.RunOptions{
				Title:      "Asteroids",
				Width:      int(a.cfg.Viewport.Width),
				Height:     int(a.cfg.Viewport.Height),
				Fullscreen: fullscreen,
				VSync:      true,
				FPSLimit:   a.cfg.Sim.TickRate,
			}

			// engo.Run blocks until the window is closed
			engo.Run(opts, scene)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "run in fullscreen mode")
	return cmd
}
