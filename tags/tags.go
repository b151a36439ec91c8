package tags

import "github.com/yohamta/donburi"

// Platform is a capability flag, not a type: the axis resolvers collide the
// player against every entity carrying it, and nothing else. Decorations
// deliberately omit it.
var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Decoration = donburi.NewTag().SetName("Decoration")
)
