package systems

import (
	"math"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer integrates the player's velocity from the current input
// vector: boost decay, horizontal acceleration with the direction-change
// kick, jump impulse, gravity, and the cosmetic phase accumulator.
// Collision resolution happens afterwards in UpdateMovement.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	axis := inputAxis(input)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		player := components.Player.Get(e)

		stepBoost(player)
		maxSpeed := currentMaxSpeed(player)

		moveLeftOrRight := false

		if axis.X < 0 {
			// Reversing out of leftward apparent motion gets the extra kick.
			if physics.SpeedX < 0 {
				physics.SpeedX += math.Abs(axis.X) * cfg.Player.Acceleration * cfg.Player.DirectionChange
			}
			physics.SpeedX += math.Abs(axis.X) * cfg.Player.Acceleration
			if physics.SpeedX > maxSpeed {
				physics.SpeedX = maxSpeed
			}
			moveLeftOrRight = true
		} else if axis.X > 0 {
			if physics.SpeedX > 0 {
				physics.SpeedX -= math.Abs(axis.X) * cfg.Player.Acceleration * cfg.Player.DirectionChange
			}
			physics.SpeedX -= math.Abs(axis.X) * cfg.Player.Acceleration
			if physics.SpeedX < -maxSpeed {
				physics.SpeedX = -maxSpeed
			}
			moveLeftOrRight = true
		}

		if !physics.Jumping && axis.Y > 0 {
			if physics.SpeedY < cfg.Player.JumpSpeed {
				physics.SpeedY = cfg.Player.JumpSpeed
			}
			physics.Jumping = true
		}

		if !moveLeftOrRight {
			if math.Abs(physics.SpeedX) < cfg.Player.Deceleration {
				physics.SpeedX = 0
			} else if physics.SpeedX > 0 {
				physics.SpeedX -= cfg.Player.Deceleration
			} else if physics.SpeedX < 0 {
				physics.SpeedX += cfg.Player.Deceleration
			}
		}

		physics.SpeedY -= cfg.Player.Deceleration
		if physics.SpeedY < cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
		// Airborne until vertical resolution proves otherwise.
		physics.Jumping = true

		player.Phase += cfg.Player.PhaseStep
		if player.Phase > math.Pi {
			player.Phase -= math.Pi
		}
	})
}

// StartSpeedBoost arms the boost window on a player entity. Nothing in the
// current content triggers it during play; it is the entry point for future
// pickup obstacles.
func StartSpeedBoost(e *donburi.Entry) {
	components.Player.Get(e).BoostTimer = 1
}

// stepBoost advances an active boost window and expires it after
// BoostDuration frames. The expiring frame already runs at base speed.
func stepBoost(player *components.PlayerData) {
	if player.BoostTimer > 0 {
		player.BoostTimer++
		if player.BoostTimer > cfg.Player.BoostDuration {
			player.BoostTimer = 0
		}
	}
}

func currentMaxSpeed(player *components.PlayerData) float64 {
	if player.BoostTimer > 0 {
		return cfg.Player.MaxSpeed * cfg.Player.BoostFactor
	}
	return cfg.Player.MaxSpeed
}
