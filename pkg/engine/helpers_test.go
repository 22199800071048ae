package engine

import (
	"math/rand/v2"
	"sync"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

const epsilon = 1e-9

// fixedRandom always returns the same value
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// eventLog records every published event of the subscribed types
type eventLog struct {
	mu     sync.Mutex
	events []event.Event
}

func recordEvents(bus *event.Bus, types ...event.Type) *eventLog {
	log := &eventLog{}
	for _, typ := range types {
		bus.Subscribe(typ, func(e event.Event) {
			log.mu.Lock()
			defer log.mu.Unlock()
			log.events = append(log.events, e)
		})
	}
	return log
}

func (l *eventLog) count(typ event.Type) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.GetType() == typ {
			n++
		}
	}
	return n
}

func spawnAsteroid(store *entity.Store, cfg *config.Config, pos physics.Vector2D, size entity.Size) entity.ID {
	return NewFragmenter(cfg, fixedRandom(0)).Spawn(store, pos, size)
}

func spawnBullet(store *entity.Store, cfg *config.Config, pos physics.Vector2D) entity.ID {
	return store.Spawn(
		entity.Position{Vector2D: pos},
		entity.Velocity{},
		entity.Scale{Vector2D: physics.Splat(cfg.Bullet.Scale)},
		entity.Bullet{Origin: pos},
	)
}

func spawnShip(store *entity.Store, cfg *config.Config, pos physics.Vector2D) entity.ID {
	return store.Spawn(
		entity.Position{Vector2D: pos},
		entity.Velocity{},
		entity.Scale{Vector2D: physics.Splat(cfg.Ship.Scale)},
		entity.Ship{},
	)
}

func countSize(store *entity.Store, size entity.Size) int {
	n := 0
	for _, rock := range store.Asteroids.All() {
		if rock.Size == size {
			n++
		}
	}
	return n
}
