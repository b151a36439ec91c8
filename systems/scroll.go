package systems

import (
	"math"

	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoveWorld shifts every world object by (dx, dy) and accumulates the
// parallax fraction into the scroll offset. The player entity is the one
// thing that never moves: all apparent player motion is world displacement.
func MoveWorld(ecs *ecs.ECS, dx, dy float64) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Player) {
			return
		}
		obj := components.Object.Get(e)
		obj.X += dx
		obj.Y += dy
	})

	scroll := getOrCreateScroll(ecs)
	scroll.OffsetX += dx * cfg.Scroll.ParallaxFactor
	scroll.OffsetY += dy * cfg.Scroll.ParallaxFactor
}

// BackgroundOrigin returns the top-left corner of the background tile grid,
// wrapped to the tile size and pulled one tile off-screen so scrolling never
// exposes a gap at the leading edge.
func BackgroundOrigin(ecs *ecs.ECS) (float64, float64) {
	scroll := getOrCreateScroll(ecs)
	tile := float64(cfg.C.TileSize)
	return math.Mod(scroll.OffsetX, tile) - tile, math.Mod(scroll.OffsetY, tile) - tile
}

// getOrCreateScroll returns the singleton scroll accumulator
func getOrCreateScroll(e *ecs.ECS) *components.ScrollData {
	entry, ok := components.Scroll.First(e.World)
	if !ok {
		entry = archetypes.Scroll.Spawn(e)
	}
	return components.Scroll.Get(entry)
}
