package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/fonts"
	"github.com/automoto/rollaway/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the boost countdown bar in the top-left corner. Nothing is
// drawn outside an active boost window.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.BoostTimer <= 0 {
		return
	}

	margin := float32(cfg.HUD.Margin)
	width := float32(cfg.HUD.BarWidth)
	height := float32(cfg.HUD.BarHeight)

	vector.DrawFilledRect(screen, margin, margin, width, height,
		cfg.HUD.BarBgColor, false)

	remaining := 1 - float32(player.BoostTimer)/float32(cfg.Player.BoostDuration)
	vector.DrawFilledRect(screen, margin, margin, width*remaining, height,
		cfg.HUD.BarFgColor, false)

	text.Draw(screen, "BOOST", fonts.HUD.Get(),
		int(margin+width)+6, int(margin+height), cfg.HUD.TextColor)
}
