package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/assets"
	"github.com/automoto/rollaway/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the level map and spawns its contents: platforms first
// (their creation order is the collision iteration order), then decorations.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := assets.MustLoadLevel("levels/level1.tmx")

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: &level})

	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.WidthSegments, p.HeightSegments)
	}
	for _, d := range level.Decorations {
		CreateCloud(ecs, d.X, d.Y)
	}

	return entry
}
