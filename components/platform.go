package components

import "github.com/yohamta/donburi"

// PlatformData holds a platform's size in tile segments. The collision rect
// is segments * tile size, stored on the entity's Object.
type PlatformData struct {
	WidthSegments  int
	HeightSegments int
}

var Platform = donburi.NewComponentType[PlatformData]()
