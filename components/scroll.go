package components

import "github.com/yohamta/donburi"

// ScrollData accumulates the parallax fraction of every world shift. The
// background tile origin is derived from it modulo the tile size.
type ScrollData struct {
	OffsetX float64
	OffsetY float64
}

var Scroll = donburi.NewComponentType[ScrollData]()
