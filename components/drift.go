package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DriftData animates a decoration's idle drift. The tween yields absolute
// sequence values; Prev remembers the last one so the per-frame delta can be
// applied on top of whatever the world shift did to the object.
type DriftData struct {
	Seq  *gween.Sequence
	Prev float32
}

var Drift = donburi.NewComponentType[DriftData]()
