// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// System priorities within the engo world. common.RenderSystem runs last
// with a negative priority.
const (
	priorityInput      = 20
	prioritySimulation = 10
)

// GameScene hosts a simulation inside an engo window
type GameScene struct {
	game     *engine.Game
	logger   *logging.Logger
	recorder *input.Recorder

	renderer *EngoRenderer
}

// NewGameScene creates a new game scene for game
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{
		game:     game,
		logger:   logger,
		recorder: input.NewRecorder(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "AsteroidsScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("engo updater is not an *ecs.World")
	}
	common.SetBackground(color.Black)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	cfg := scene.game.Config
	scene.renderer = NewEngoRenderer(scene.game.Store, renderSystem, cfg.Viewport.Width, cfg.Viewport.Height)

	world.AddSystem(NewInputSystem(scene.recorder))
	world.AddSystem(&SimulationSystem{game: scene.game, recorder: scene.recorder, renderer: scene.renderer})

	scene.game.Start()
	scene.renderer.Sync()
	scene.logger.Info(context.Background(), "scene ready", "sprites", scene.renderer.Len())
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	scene.game.Stop()
	snap := scene.game.Snapshot()
	scene.logger.Info(context.Background(), "scene closed",
		"tick", snap.Tick,
		"status", snap.Status.String(),
		"asteroids", snap.TotalAsteroids())
}

// SimulationSystem advances the game by one tick per frame and mirrors
// the result to the screen.
type SimulationSystem struct {
	game     *engine.Game
	recorder *input.Recorder
	renderer *EngoRenderer
}

// Update runs one simulation tick
func (s *SimulationSystem) Update(dt float32) {
	s.game.Tick(s.recorder.Snapshot())
	s.renderer.Sync()
}

// Remove satisfies the ecs.System interface
func (s *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs the simulation after input and before rendering
func (s *SimulationSystem) Priority() int { return prioritySimulation }
