package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/input"
)

// System priorities. The ecs world runs higher priorities first, which
// fixes the per-tick order: control, motion, collision, projectile culling.
const (
	PriorityShipControl = 40
	PriorityMotion      = 30
	PriorityCollision   = 20
	PriorityProjectile  = 10
)

// Frame is the per-tick state shared by the systems of one game
type Frame struct {
	Tick  uint64
	Input input.State
}
