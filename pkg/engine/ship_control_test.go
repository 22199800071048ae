package engine

import (
	"math"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

type controlFixture struct {
	cfg   *config.Config
	store *entity.Store
	frame *Frame
	bus   *event.Bus
	sys   *ShipControlSystem
	ship  entity.ID
}

func newControlFixture() *controlFixture {
	f := &controlFixture{
		cfg:   config.DefaultConfig(),
		store: entity.NewStore(),
		frame: &Frame{},
		bus:   event.NewEventBus(),
	}
	f.sys = NewShipControlSystem(f.store, f.cfg, f.frame, f.bus)
	f.ship = spawnShip(f.store, f.cfg, physics.Vector2D{})
	return f
}

func (f *controlFixture) step(in input.State) {
	f.frame.Input = in
	f.sys.Update(1)
	f.frame.Tick++
}

func (f *controlFixture) velocity() physics.Vector2D {
	vel, _ := f.store.Velocities.Get(f.ship)
	return vel.Vector2D
}

func TestShipControl_Rotation(t *testing.T) {
	tests := []struct {
		name string
		in   input.State
		want float64
	}{
		{"none", input.State{}, 0},
		{"left", input.Held(input.RotateLeft), 0.08},
		{"right", input.Held(input.RotateRight), -0.08},
		{"left wins", input.Held(input.RotateLeft, input.RotateRight), 0.08},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newControlFixture()
			f.step(tc.in)

			ship, _ := f.store.Ships.Get(f.ship)
			if math.Abs(ship.Rotation-tc.want) > epsilon {
				t.Errorf("expected rotation %v, got %v", tc.want, ship.Rotation)
			}
		})
	}
}

func TestShipControl_ThrustFacesUpAtZeroRotation(t *testing.T) {
	f := newControlFixture()
	f.step(input.Held(input.Accelerate))

	vel := f.velocity()
	if math.Abs(vel.X) > epsilon || math.Abs(vel.Y-0.15) > epsilon {
		t.Errorf("expected (0, 0.15), got %+v", vel)
	}
}

func TestShipControl_SpeedClamp(t *testing.T) {
	rng := seeded(3)
	f := newControlFixture()

	for tick := 0; tick < 500; tick++ {
		in := input.Held(input.Accelerate)
		if rng.Float64() < 0.1 {
			in = input.Held(input.Accelerate, input.RotateLeft)
		}
		f.step(in)

		if speed := f.velocity().Length(); speed > f.cfg.Ship.MaxSpeed+epsilon {
			t.Fatalf("tick %d: speed %v exceeds %v", tick, speed, f.cfg.Ship.MaxSpeed)
		}
	}
	if speed := f.velocity().Length(); speed < f.cfg.Ship.MaxSpeed/2 {
		t.Errorf("expected sustained thrust to build speed, got %v", speed)
	}
}

func TestShipControl_DragOnlyWithoutThrust(t *testing.T) {
	f := newControlFixture()
	vel, _ := f.store.Velocities.Get(f.ship)
	vel.Vector2D = physics.Vector2D{X: 3}

	f.step(input.Held(input.RotateLeft))
	if got := f.velocity().X; math.Abs(got-3*0.98) > epsilon {
		t.Errorf("expected drag to give %v, got %v", 3*0.98, got)
	}

	before := f.velocity()
	f.step(input.Held(input.Accelerate))
	want := before.Add(physics.Heading(0.08).Scale(0.15))
	if got := f.velocity(); got.Distance(want) > epsilon {
		t.Errorf("expected thrust without drag %+v, got %+v", want, got)
	}
}

func TestShipControl_FireDebounce(t *testing.T) {
	f := newControlFixture()
	fired := recordEvents(f.bus, event.BulletFired)
	rec := input.NewRecorder()

	rec.Set(input.Fire, true)
	for i := 0; i < 30; i++ {
		f.step(rec.Snapshot())
	}
	if n := f.store.Bullets.Len(); n != 1 {
		t.Fatalf("holding fire for 30 ticks produced %d bullets, want 1", n)
	}

	rec.Set(input.Fire, false)
	rec.Set(input.Fire, true)
	f.step(rec.Snapshot())
	if n := f.store.Bullets.Len(); n != 2 {
		t.Errorf("release and press produced %d bullets total, want 2", n)
	}
	if n := fired.count(event.BulletFired); n != 2 {
		t.Errorf("expected 2 BulletFired events, got %d", n)
	}
}

func TestShipControl_BulletSpawn(t *testing.T) {
	f := newControlFixture()
	pos, _ := f.store.Positions.Get(f.ship)
	pos.Vector2D = physics.Vector2D{X: 40, Y: -20}

	f.step(input.State{}.WithPress(input.Fire))

	ids := f.store.Bullets.IDs()
	if len(ids) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(ids))
	}
	bullet, _ := f.store.Bullets.Get(ids[0])
	bpos, _ := f.store.Positions.Get(ids[0])
	bvel, _ := f.store.Velocities.Get(ids[0])

	if bullet.Origin != pos.Vector2D || bpos.Vector2D != pos.Vector2D {
		t.Errorf("expected bullet at ship position %+v, got pos %+v origin %+v", pos.Vector2D, bpos.Vector2D, bullet.Origin)
	}
	if math.Abs(bvel.Length()-12) > epsilon {
		t.Errorf("expected bullet speed 12, got %v", bvel.Length())
	}
	if math.Abs(bvel.X) > epsilon || bvel.Y <= 0 {
		t.Errorf("expected bullet moving along +y, got %+v", bvel.Vector2D)
	}
}

func TestShipControl_NoShip(t *testing.T) {
	f := newControlFixture()
	f.store.Destroy(f.ship)

	f.step(input.Held(input.Accelerate).WithPress(input.Fire))
	if f.store.Bullets.Len() != 0 {
		t.Error("expected no bullets without a ship")
	}
}
