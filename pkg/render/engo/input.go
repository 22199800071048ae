// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/input"
)

// Button names registered with engo.Input, indexed by action
var buttonNames = map[input.Action]string{
	input.RotateLeft:  "rotateLeft",
	input.RotateRight: "rotateRight",
	input.Accelerate:  "accelerate",
	input.Fire:        "fire",
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonNames[input.RotateLeft], engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonNames[input.RotateRight], engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonNames[input.Accelerate], engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonNames[input.Fire], engo.KeySpace)
}

// InputSystem polls the registered buttons every frame and records the
// transitions for the next simulation tick.
type InputSystem struct {
	recorder    *input.Recorder
	isDown      func(button string) bool
	justPressed func(button string) bool
}

// NewInputSystem creates an input system feeding recorder
func NewInputSystem(recorder *input.Recorder) *InputSystem {
	return &InputSystem{
		recorder: recorder,
		isDown: func(button string) bool {
			return engo.Input.Button(button).Down()
		},
		justPressed: func(button string) bool {
			return engo.Input.Button(button).JustPressed()
		},
	}
}

// Update polls the keyboard. A key pressed and released within one frame
// still counts as a press.
func (is *InputSystem) Update(dt float32) {
	for action := input.RotateLeft; action <= input.Fire; action++ {
		name := buttonNames[action]
		if is.justPressed(name) {
			is.recorder.Set(action, false)
			is.recorder.Set(action, true)
		}
		is.recorder.Set(action, is.isDown(name))
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs input before the simulation
func (is *InputSystem) Priority() int { return priorityInput }
