package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static collider of widthSegments x heightSegments
// tiles with its top-left corner at (x, y) in world coordinates.
func CreatePlatform(ecs *ecs.ECS, x, y float64, widthSegments, heightSegments int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	tile := float64(cfg.C.TileSize)
	obj := resolv.NewObject(x, y, float64(widthSegments)*tile, float64(heightSegments)*tile)
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	})

	return platform
}
