package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	cloudWidth  = 64.0
	cloudHeight = 32.0
	cloudDrift  = 24.0 // Horizontal drift amplitude in pixels
)

// CreateCloud spawns a drifting, non-colliding decoration. Clouds carry no
// Platform tag, so the collision resolvers never see them, but they are world
// objects and scroll with everything else.
func CreateCloud(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	cloud := archetypes.Decoration.Spawn(ecs)

	obj := resolv.NewObject(x, y, cloudWidth, cloudHeight)
	obj.Data = cloud
	components.Object.SetValue(cloud, components.ObjectData{Object: obj})

	// Slow back-and-forth drift layered on top of the world shift.
	seq := gween.NewSequence(
		gween.New(0, cloudDrift, 4, ease.InOutQuad),
		gween.New(cloudDrift, 0, 4, ease.InOutQuad),
	)
	seq.SetLoop(-1)
	components.Drift.SetValue(cloud, components.DriftData{Seq: seq})

	return cloud
}
