package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer all entities and renderers use.
const Default = ecs.LayerDefault
