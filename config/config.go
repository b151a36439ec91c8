package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MaxSpeed        float64 // Base max horizontal speed (units/frame)
	BoostFactor     float64 // Max speed multiplier while a boost window is active
	BoostDuration   int     // Boost window length in frames (60 fps)
	JumpSpeed       float64 // Initial upward speed on jump
	Acceleration    float64
	Deceleration    float64 // Linear slowdown with no input; also the per-frame gravity step
	DirectionChange float64 // Extra acceleration multiplier when reversing direction

	// Visual
	RollFactor float64 // Rotation per unit of horizontal speed
	PhaseStep  float64 // Per-frame increment of the animation phase accumulator

	// Dimensions
	Size int // Collision box side length, equal to the tile size
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed       float64 // Most negative vertical speed allowed
	CollisionTolerance float64 // Lookahead margin for vertical resolution, prevents tunneling
}

// ScrollConfig contains world-scrolling configuration values
type ScrollConfig struct {
	ParallaxFactor float64 // Fraction of each world shift applied to the background
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	BarWidth  float64
	BarHeight float64
	Margin    float64

	BarBgColor color.RGBA
	BarFgColor color.RGBA
	TextColor  color.RGBA
}

// MenuConfig contains title screen configuration
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool // Skip the title screen and go directly to the game
	Overlay  bool // Draw collision rects and a velocity readout
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TileSize int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Scroll ScrollConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue  = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:    480,
		Height:   320,
		TileSize: 32,
	}

	Player = PlayerConfig{
		MaxSpeed:        5.8,
		BoostFactor:     1.5,
		BoostDuration:   60 * 6, // 60 fps * 6 sec
		JumpSpeed:       7.0,
		Acceleration:    1.1,
		Deceleration:    1.1 * 0.2,
		DirectionChange: 3.0,

		RollFactor: 0.55,
		PhaseStep:  0.07,

		Size: 32,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed:       -15.0,
		CollisionTolerance: 3.0,
	}

	Scroll = ScrollConfig{
		ParallaxFactor: 0.25,
	}

	HUD = HUDConfig{
		BarWidth:  80,
		BarHeight: 8,
		Margin:    10,

		BarBgColor: color.RGBA{40, 40, 40, 255},
		BarFgColor: color.RGBA{255, 200, 40, 255},
		TextColor:  White,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{20, 20, 30, 255},
		TitleColor:      White,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}
