package systems

import (
	"github.com/automoto/rollaway/assets"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Lazily loaded so headless simulation tests never touch image decoding.
	ballImage       *ebiten.Image
	platformImage   *ebiten.Image
	backgroundImage *ebiten.Image
	cloudImage      *ebiten.Image
)

// DrawBackground tiles the parallax backdrop. The grid is one tile wider on
// each edge than the screen needs so no gap appears mid-scroll.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	if backgroundImage == nil {
		backgroundImage = assets.GetImage("background.png")
	}

	x, y := BackgroundOrigin(ecs)
	drawTiles(screen, backgroundImage, x, y,
		cfg.C.Width/cfg.C.TileSize+3,
		cfg.C.Height/cfg.C.TileSize+2,
	)
}

// DrawDecorations renders non-colliding scenery behind the platforms.
func DrawDecorations(ecs *ecs.ECS, screen *ebiten.Image) {
	if cloudImage == nil {
		cloudImage = assets.GetImage("cloud.png")
	}

	tags.Decoration.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(cloudImage, drawOp)
	})
}

// DrawPlatforms renders each platform as a grid of tile segments.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	if platformImage == nil {
		platformImage = assets.GetImage("platform.png")
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		platform := components.Platform.Get(e)
		drawTiles(screen, platformImage, obj.X, obj.Y,
			platform.WidthSegments, platform.HeightSegments)
	})
}

// DrawPlayer renders the ball rotated about its center.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	if ballImage == nil {
		ballImage = assets.GetImage("ball.png")
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		player := components.Player.Get(e)

		half := float64(cfg.Player.Size) / 2

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-half, -half)
		drawOp.GeoM.Rotate(player.Rotation)
		drawOp.GeoM.Translate(obj.X+half, obj.Y+half)
		screen.DrawImage(ballImage, drawOp)
	})
}

// drawTiles stamps an image across a widthSegments x heightSegments grid.
func drawTiles(screen, image *ebiten.Image, x, y float64, widthSegments, heightSegments int) {
	tile := float64(cfg.C.TileSize)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			drawOp.GeoM.Reset()
			drawOp.GeoM.Translate(x+float64(ix)*tile, y+float64(iy)*tile)
			screen.DrawImage(image, drawOp)
		}
	}
}
