package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw keyboard state and updates the input singleton.
// Must run before UpdatePlayer in the system order so that key changes are
// visible to the same frame's simulation.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// inputAxis collapses the held actions into the acceleration vector the
// player model consumes: x and y each in {-1, 0, 1}.
func inputAxis(input *components.InputData) components.Vector {
	var axis components.Vector
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		axis.X -= 1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		axis.X += 1
	}
	if GetAction(input, cfg.ActionJump).Pressed {
		axis.Y = 1
	}
	return axis
}
