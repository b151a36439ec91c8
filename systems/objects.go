package systems

import (
	"github.com/automoto/rollaway/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const driftDelta = 1.0 / 60.0

// UpdateObjects runs each world object's per-frame update. Platforms have
// none; decorations advance their drift tween. Runs first so obstacle motion
// is settled before the player integrates and collides.
func UpdateObjects(ecs *ecs.ECS) {
	components.Drift.Each(ecs.World, func(e *donburi.Entry) {
		drift := components.Drift.Get(e)
		value, _, _ := drift.Seq.Update(driftDelta)

		// The tween yields absolute values; apply the delta so the drift
		// stacks with the world shift instead of overwriting it.
		obj := components.Object.Get(e)
		obj.X += float64(value - drift.Prev)
		drift.Prev = value
	})
}
