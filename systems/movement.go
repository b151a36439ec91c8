package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/gamemath"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies the player's velocity as world shifts and resolves
// collisions one axis at a time. The order is load-bearing: horizontal shift,
// horizontal resolution, vertical shift, vertical resolution, then the
// cosmetic roll. Runs after UpdatePlayer.
func UpdateMovement(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)

	MoveWorld(ecs, physics.SpeedX, 0)
	resolveHorizontal(ecs, playerEntry, physics)
	MoveWorld(ecs, 0, physics.SpeedY)
	resolveVertical(ecs, playerEntry, physics)

	// Rolling tilt from the final horizontal speed.
	player := components.Player.Get(playerEntry)
	unitVelocity := physics.SpeedX / (float64(cfg.C.TileSize) / 2)
	player.Rotation -= unitVelocity * cfg.Player.RollFactor
}

// resolveHorizontal pushes the world back out of the player along X. Every
// platform is visited in creation order and the last colliding one wins; the
// single accumulated offset is applied once.
func resolveHorizontal(ecs *ecs.ECS, playerEntry *donburi.Entry, physics *components.PhysicsData) {
	playerRect := gamemath.FromObject(components.Object.Get(playerEntry).Object)

	isColliding := false
	offsetX := 0.0

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		rect := gamemath.FromObject(components.Object.Get(e).Object)
		intersection := gamemath.Intersection(rect, playerRect)
		if intersection.EmptyWithTolerance() {
			return
		}

		if rect.Left() > playerRect.Left() {
			offsetX = intersection.W
			isColliding = true
		} else if rect.Right() < playerRect.Right() {
			offsetX = -intersection.W
			isColliding = true
		}
	})

	if isColliding {
		MoveWorld(ecs, offsetX, 0)
		physics.SpeedX = 0
	}
}

// resolveVertical distinguishes landing on a platform top (clears Jumping)
// from bumping a platform bottom (zeroes SpeedY only). The top-edge checks
// look ahead by SpeedY minus the collision tolerance so a full-speed fall
// cannot tunnel through a platform in one step.
//
// The first branch zeroes upward speed whenever the platform's underside sits
// above the player's feet. Its SpeedY > 0 guard means it only fires while
// still rising; the literal structure is kept and pinned by tests.
func resolveVertical(ecs *ecs.ECS, playerEntry *donburi.Entry, physics *components.PhysicsData) {
	playerRect := gamemath.FromObject(components.Object.Get(playerEntry).Object)

	isColliding := false
	offsetY := 0.0

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		rect := gamemath.FromObject(components.Object.Get(e).Object)
		intersection := gamemath.Intersection(rect, playerRect)
		if intersection.EmptyWithTolerance() {
			return
		}

		if rect.Bottom() < playerRect.Bottom() {
			if physics.SpeedY > 0 {
				physics.SpeedY = 0
			}
			offsetY = -intersection.H
			isColliding = true
		} else if physics.SpeedY < 0 {
			if rect.Top() > playerRect.Bottom()-cfg.Physics.CollisionTolerance+physics.SpeedY {
				physics.SpeedY = 0
				physics.Jumping = false
				offsetY = intersection.H
				isColliding = true
			}
		} else if rect.Top() > playerRect.Bottom()-cfg.Physics.CollisionTolerance+physics.SpeedY {
			// Resting contact while stationary or creeping upward.
			physics.Jumping = false
			offsetY = intersection.H
			isColliding = true
		}
	})

	if isColliding {
		MoveWorld(ecs, 0, offsetY)
	}
}
