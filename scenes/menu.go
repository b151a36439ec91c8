package scenes

import (
	"os"

	"github.com/automoto/rollaway/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	ms := &MenuScene{sceneChanger: sc}
	ms.ui = ui.NewMenuUI(
		func() {
			sc.ChangeScene(NewPlatformerScene(sc))
		},
		func() {
			os.Exit(0)
		},
	)
	return ms
}

func (ms *MenuScene) Update() {
	ms.ui.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	ms.ui.UI.Draw(screen)
}
