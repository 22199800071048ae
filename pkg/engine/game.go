// pkg/engine/game.go
package engine

import (
	"context"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// maxSpawnAttempts bounds the rejection sampling of initial asteroid positions
const maxSpawnAttempts = 64

// GameStatus is the lifecycle state of a game
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Reasons a game ends
const (
	EndReasonShipLost = "ship_lost"
	EndReasonCleared  = "cleared"
)

// Game represents the core game state and logic
type Game struct {
	Config    *config.Config
	Store     *entity.Store
	World     *ecs.World
	EventBus  *event.Bus
	Status    GameStatus
	EndReason string
	ShipID    entity.ID

	Fragmenter *Fragmenter

	frame  *Frame
	rng    RandomSource
	logger *logging.Logger
	ctx    context.Context
}

// Option customizes a Game
type Option func(*Game)

// WithRandom injects the random source used for asteroid directions and
// placement.
func WithRandom(rng RandomSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEventBus shares an existing event bus with the game
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// NewGame creates a new game with the specified configuration. The world
// is empty until Start is called.
func NewGame(cfg *config.Config, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	game := &Game{
		Config: cfg,
		Store:  entity.NewStore(),
		World:  &ecs.World{},
		frame:  &Frame{},
	}
	for _, opt := range opts {
		opt(game)
	}
	if game.rng == nil {
		game.rng = NewRandom(cfg.Sim.Seed)
	}
	if game.logger == nil {
		game.logger = logging.Discard()
	}
	if game.EventBus == nil {
		game.EventBus = event.NewEventBus()
	}
	game.ctx = logging.WithRunID(context.Background(), logging.GenerateRunID())
	game.Fragmenter = NewFragmenter(cfg, game.rng)

	game.initSystems()
	game.registerEventHandlers()

	return game
}

// initSystems registers the simulation systems with the ecs world
func (g *Game) initSystems() {
	bounds := physics.NewBounds(g.Config.Viewport.Width, g.Config.Viewport.Height)

	g.World.AddSystem(NewShipControlSystem(g.Store, g.Config, g.frame, g.EventBus))
	g.World.AddSystem(NewMotionSystem(g.Store, bounds))
	g.World.AddSystem(NewCollisionSystem(g.Store, g.Config, g.frame, g.EventBus, g.Fragmenter))
	g.World.AddSystem(NewProjectileSystem(g.Store, g.Config.FireRange(), g.frame, g.EventBus))

	// keep the world's systems in step with the store
	g.Store.OnDestroy(g.World.RemoveEntity)
}

// registerEventHandlers sets up event handlers for game status and logging
func (g *Game) registerEventHandlers() {
	g.EventBus.Subscribe(event.ShipDestroyed, func(e event.Event) {
		ev, ok := e.(*event.EntityEvent)
		if !ok {
			return
		}
		g.logger.Debug(g.ctx, "ship destroyed", "entity_id", ev.EntityID, "tick", ev.Tick)
		if ev.EntityID == uint64(g.ShipID) {
			g.end(EndReasonShipLost)
		}
	})

	logImpact := func(e event.Event) {
		ev, ok := e.(*event.ImpactEvent)
		if !ok {
			return
		}
		g.logger.Debug(g.ctx, "asteroid hit",
			"type", ev.GetType(),
			"asteroid_id", ev.AsteroidID,
			"bullet_id", ev.BulletID,
			"size", ev.Size,
			"fragments", len(ev.Fragments),
			"tick", ev.Tick)
	}
	g.EventBus.Subscribe(event.AsteroidSplit, logImpact)
	g.EventBus.Subscribe(event.AsteroidDestroyed, logImpact)
}

// Start populates the world and activates the game. Calling Start on a
// game that is not waiting has no effect.
func (g *Game) Start() {
	if g.Status != GameStatusWaiting {
		return
	}
	g.ShipID = g.SpawnShip(physics.Vector2D{})
	for i := 0; i < g.Config.Asteroid.InitialCount; i++ {
		g.SpawnAsteroid(g.randomClearPosition(), entity.SizeBig)
	}

	g.Status = GameStatusActive
	g.logger.Info(g.ctx, "game started",
		"asteroids", g.Config.Asteroid.InitialCount,
		"viewport_width", g.Config.Viewport.Width,
		"viewport_height", g.Config.Viewport.Height)
	g.EventBus.Publish(event.NewGameEvent(event.GameStarted, g, "", g.frame.Tick))
}

// Stop ends an active game
func (g *Game) Stop() {
	g.end("stopped")
}

func (g *Game) end(reason string) {
	if g.Status != GameStatusActive {
		return
	}
	g.Status = GameStatusEnded
	g.EndReason = reason
	g.logger.Info(g.ctx, "game ended", "reason", reason, "tick", g.frame.Tick)
	g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, reason, g.frame.Tick))
}

// randomClearPosition samples a point inside the viewport at least
// spawn_clearance away from the origin. The last sample is used when every
// attempt lands too close.
func (g *Game) randomClearPosition() physics.Vector2D {
	var pos physics.Vector2D
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		pos = physics.Vector2D{
			X: (g.rng.Float64() - 0.5) * g.Config.Viewport.Width,
			Y: (g.rng.Float64() - 0.5) * g.Config.Viewport.Height,
		}
		if pos.Length() >= g.Config.Asteroid.SpawnClearance {
			return pos
		}
	}
	g.logger.Warn(g.ctx, "no clear spawn position found",
		"attempts", maxSpawnAttempts,
		"clearance", g.Config.Asteroid.SpawnClearance)
	return pos
}

// Tick advances the simulation by one tick using the given input
func (g *Game) Tick(in input.State) {
	g.frame.Input = in
	g.World.Update(1)
	g.frame.Tick++
	g.checkCleared()
}

// checkCleared ends the game once every asteroid is gone
func (g *Game) checkCleared() {
	if g.Status == GameStatusActive && g.Store.Asteroids.Len() == 0 {
		g.end(EndReasonCleared)
	}
}

// Run drives the game headlessly for the given number of ticks, or until
// ctx is cancelled. ticks <= 0 runs until the game ends.
func (g *Game) Run(ctx context.Context, ticks int, src input.Source) error {
	g.Start()
	for n := 0; ticks <= 0 || n < ticks; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ticks <= 0 && g.Status == GameStatusEnded {
			return nil
		}
		g.Tick(src.Next(g.frame.Tick))
	}
	return nil
}

// CurrentTick returns the number of ticks run so far
func (g *Game) CurrentTick() uint64 {
	return g.frame.Tick
}

// SpawnShip creates the ship at pos. A second ship is never created: the
// id of the living ship is returned instead.
func (g *Game) SpawnShip(pos physics.Vector2D) entity.ID {
	if g.Store.Alive(g.ShipID) && g.Store.Ships.Has(g.ShipID) {
		return g.ShipID
	}
	g.ShipID = g.Store.Spawn(
		entity.Position{Vector2D: pos},
		entity.Velocity{},
		entity.Scale{Vector2D: physics.Splat(g.Config.Ship.Scale)},
		entity.Ship{},
	)
	return g.ShipID
}

// SpawnAsteroid creates an asteroid of the given size at pos
func (g *Game) SpawnAsteroid(pos physics.Vector2D, size entity.Size) entity.ID {
	return g.Fragmenter.Spawn(g.Store, pos, size)
}

// SpawnBullet creates a bullet at pos moving with vel, measuring its range
// from pos.
func (g *Game) SpawnBullet(pos, vel physics.Vector2D) entity.ID {
	return g.Store.Spawn(
		entity.Position{Vector2D: pos},
		entity.Velocity{Vector2D: vel},
		entity.Scale{Vector2D: physics.Splat(g.Config.Bullet.Scale)},
		entity.Bullet{Origin: pos},
	)
}

// Snapshot summarizes the state of a game
type Snapshot struct {
	Tick      uint64
	Status    GameStatus
	EndReason string
	ShipAlive bool
	Asteroids map[entity.Size]int
	Bullets   int
}

// TotalAsteroids returns the number of asteroids of every size
func (s Snapshot) TotalAsteroids() int {
	total := 0
	for _, n := range s.Asteroids {
		total += n
	}
	return total
}

// Snapshot returns the current counts of the game
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.frame.Tick,
		Status:    g.Status,
		EndReason: g.EndReason,
		ShipAlive: g.Store.Ships.Has(g.ShipID),
		Asteroids: make(map[entity.Size]int),
		Bullets:   g.Store.Bullets.Len(),
	}
	for _, rock := range g.Store.Asteroids.All() {
		snap.Asteroids[rock.Size]++
	}
	return snap
}
