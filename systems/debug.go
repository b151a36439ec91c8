package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the player's velocity.
// World coordinates are screen coordinates here, so no camera transform is
// needed.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		c := cfg.Cyan
		if e.HasComponent(tags.Platform) {
			c = cfg.Grey
		} else if e.HasComponent(tags.Player) {
			c = cfg.Blue
		}

		drawOutline(screen, obj.X, obj.Y, obj.W, obj.H, c)
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		physics := components.Physics.Get(playerEntry)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("speed: %.2f, %.2f jumping: %v",
				physics.SpeedX, physics.SpeedY, physics.Jumping),
			4, cfg.C.Height-18)
	}
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
}
