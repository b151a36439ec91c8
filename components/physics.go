package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the player's velocity state.
//
// SpeedX and SpeedY are world velocities: the player sprite never moves, so
// every frame the whole world is shifted by (SpeedX, 0) then (0, SpeedY).
// SpeedX is therefore the mirror of the player's apparent motion - holding
// Left drives it positive. SpeedY is negative while falling.
type PhysicsData struct {
	SpeedX  float64
	SpeedY  float64
	Jumping bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
