package assets

import (
	"bytes"
	"embed"
	"fmt"

	cfg "github.com/automoto/rollaway/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Level is the engine-free content of a level map. Coordinates are world
// coordinates before the initial centering shift.
type Level struct {
	Name        string
	Width       int
	Height      int
	Platforms   []PlatformSpawn
	Decorations []DecorationSpawn
	PlayerSpawn PlayerSpawn
}

// PlatformSpawn places a platform of WidthSegments x HeightSegments tiles.
type PlatformSpawn struct {
	X, Y           float64
	WidthSegments  int
	HeightSegments int
}

type DecorationSpawn struct {
	X, Y float64
}

type PlayerSpawn struct {
	X, Y float64
}

// MustLoadLevel parses an embedded Tiled map into level data. Platforms come
// from the "Platforms" object group (sizes snapped to whole tile segments),
// decorations from "Decorations", and the spawn from the first object of
// "PlayerSpawn". Any malformed map is fatal at startup.
func MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", levelPath, err))
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tile := float64(cfg.C.TileSize)
	spawnFound := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				widthSegments := int(o.Width / tile)
				heightSegments := int(o.Height / tile)
				if widthSegments <= 0 || heightSegments <= 0 {
					panic(fmt.Sprintf("platform %d in %s has non-positive segments", o.ID, levelPath))
				}
				level.Platforms = append(level.Platforms, PlatformSpawn{
					X:              o.X,
					Y:              o.Y,
					WidthSegments:  widthSegments,
					HeightSegments: heightSegments,
				})
			}
		case "Decorations":
			for _, o := range og.Objects {
				level.Decorations = append(level.Decorations, DecorationSpawn{X: o.X, Y: o.Y})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if !spawnFound {
					level.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}
					spawnFound = true
				}
			}
		}
	}

	if len(level.Platforms) == 0 {
		panic(fmt.Sprintf("no platforms defined in %s", levelPath))
	}
	if !spawnFound {
		panic(fmt.Sprintf("no player spawn defined in %s", levelPath))
	}

	return level
}

var imageCache = map[string]*ebiten.Image{}

// GetImage returns a cached image from assets/images. Missing or corrupt
// assets are fatal: there is no degraded mode.
func GetImage(name string) *ebiten.Image {
	if img, ok := imageCache[name]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile("images/" + name)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", name, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", name, err))
	}

	imageCache[name] = img
	return img
}
