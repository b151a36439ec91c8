package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/systems"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// System order is the frame algorithm: obstacle updates, input, velocity
	// integration, then world shift + collision resolution.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateMovement)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawDecorations)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	level := factory.CreateLevel(ps.ecs)
	levelData := components.Level.Get(level)

	player := factory.CreatePlayer(ps.ecs)
	playerObj := components.Object.Get(player)

	// Align the world so the authored spawn point lands under the
	// screen-centered player. From here on only MoveWorld moves anything.
	spawn := levelData.CurrentLevel.PlayerSpawn
	systems.MoveWorld(ps.ecs, playerObj.X-spawn.X, playerObj.Y-spawn.Y)
}
