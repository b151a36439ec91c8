package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the center of the screen, where it stays
// for the whole session; scrolling moves everything else.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	size := float64(cfg.Player.Size)
	x := float64(cfg.C.Width)/2 - size/2
	y := float64(cfg.C.Height)/2 - size/2

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Phase: 1.0,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	return player
}
