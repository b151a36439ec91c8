package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Rotation   float64 // Visual rolling tilt, radians
	Phase      float64 // Animation phase accumulator, wraps at pi
	BoostTimer int     // Frames since a speed boost was armed, 0 = inactive
}

var Player = donburi.NewComponentType[PlayerData]()
