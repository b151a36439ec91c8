package systems

import (
	"math"
	"testing"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/gamemath"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// stepFrame runs one simulation frame with the given actions held.
func stepFrame(e *ecs.ECS, actions ...cfg.ActionID) {
	press(e, actions...)
	UpdatePlayer(e)
	UpdateMovement(e)
}

func playerCenterX() float64 {
	return float64(cfg.C.Width)/2 - float64(cfg.Player.Size)/2
}

func playerCenterY() float64 {
	return float64(cfg.C.Height)/2 - float64(cfg.Player.Size)/2
}

func TestMoveWorldLeavesPlayerFixed(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	platform := factory.CreatePlatform(e, 100, 200, 2, 1)

	MoveWorld(e, 10, -5)

	playerObj := components.Object.Get(player)
	if playerObj.X != playerCenterX() || playerObj.Y != playerCenterY() {
		t.Errorf("Player moved to (%v, %v)", playerObj.X, playerObj.Y)
	}

	platObj := components.Object.Get(platform)
	if platObj.X != 110 || platObj.Y != 195 {
		t.Errorf("Expected platform at (110, 195), got (%v, %v)", platObj.X, platObj.Y)
	}

	scroll := getOrCreateScroll(e)
	if scroll.OffsetX != 10*cfg.Scroll.ParallaxFactor || scroll.OffsetY != -5*cfg.Scroll.ParallaxFactor {
		t.Errorf("Expected scroll offset (2.5, -1.25), got (%v, %v)", scroll.OffsetX, scroll.OffsetY)
	}
}

// The player rests with its feet flush on a platform top. Frame after frame
// the gravity shift must be undone exactly by vertical resolution.
func TestRestingOnPlatformIsStable(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	platform := factory.CreatePlatform(e, 96, playerCenterY()+float64(cfg.Player.Size), 11, 5)

	physics := components.Physics.Get(player)
	playerObj := components.Object.Get(player)
	platObj := components.Object.Get(platform)
	top := platObj.Y

	for i := 0; i < 10; i++ {
		stepFrame(e)

		if physics.SpeedY != 0 {
			t.Fatalf("SpeedY %v after resting frame %d", physics.SpeedY, i)
		}
		if physics.Jumping {
			t.Fatalf("Jumping set on resting frame %d", i)
		}
		if math.Abs(platObj.Y-top) > 1e-9 {
			t.Fatalf("Platform drifted to %v on frame %d", platObj.Y, i)
		}
		if playerObj.X != playerCenterX() || playerObj.Y != playerCenterY() {
			t.Fatalf("Player moved to (%v, %v) on frame %d", playerObj.X, playerObj.Y, i)
		}
	}
}

// A fall from terminal velocity must land flush on the platform top instead
// of passing through or coming to rest inside it.
func TestLandingFromTerminalVelocityDoesNotTunnel(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	platform := factory.CreatePlatform(e, 96, playerCenterY()+float64(cfg.Player.Size)+200, 11, 5)

	physics := components.Physics.Get(player)
	playerObj := components.Object.Get(player)
	platObj := components.Object.Get(platform)

	landed := false
	for i := 0; i < 300; i++ {
		stepFrame(e)

		overlap := gamemath.Intersection(
			gamemath.FromObject(platObj.Object),
			gamemath.FromObject(playerObj.Object),
		)
		if !overlap.EmptyWithTolerance() {
			t.Fatalf("Player left inside platform on frame %d: overlap %+v", i, overlap)
		}
		if !physics.Jumping && physics.SpeedY == 0 {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("Player never landed")
	}

	feet := playerCenterY() + float64(cfg.Player.Size)
	if math.Abs(platObj.Y-feet) > 1e-6 {
		t.Errorf("Expected platform top flush at %v, got %v", feet, platObj.Y)
	}
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	wall := factory.CreatePlatform(e, playerCenterX()+float64(cfg.Player.Size)+24, playerCenterY()-24, 1, 3)

	physics := components.Physics.Get(player)
	wallObj := components.Object.Get(wall)
	faceX := playerCenterX() + float64(cfg.Player.Size)

	// Holding Right pulls the wall toward the player until contact.
	hit := false
	for i := 0; i < 20; i++ {
		stepFrame(e, cfg.ActionMoveRight)
		if physics.SpeedX == 0 && math.Abs(wallObj.X-faceX) < 1e-6 {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatalf("Wall never stopped the player, SpeedX %v wall at %v", physics.SpeedX, wallObj.X)
	}

	// Pressing into the wall again must push back out on the same frame.
	stepFrame(e, cfg.ActionMoveRight)
	if physics.SpeedX != 0 {
		t.Errorf("Expected SpeedX zeroed against wall, got %v", physics.SpeedX)
	}
	if math.Abs(wallObj.X-faceX) > 1e-6 {
		t.Errorf("Expected wall held at %v, got %v", faceX, wallObj.X)
	}
}

// When several platforms overlap the player at once, the resolver keeps the
// push-out from the last one in creation order.
func TestLastCollidingPlatformWins(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	physics := components.Physics.Get(player)
	physics.SpeedX = 3

	first := factory.CreatePlatform(e, playerCenterX()-24, playerCenterY(), 1, 1)
	second := factory.CreatePlatform(e, playerCenterX()+16, playerCenterY(), 1, 1)

	resolveHorizontal(e, player, physics)

	// first alone would push the world left by 8; second pushes right by 16
	// and wins, carrying first along with it.
	firstObj := components.Object.Get(first)
	secondObj := components.Object.Get(second)
	if math.Abs(firstObj.X-(playerCenterX()-8)) > 1e-9 {
		t.Errorf("Expected first platform at %v, got %v", playerCenterX()-8, firstObj.X)
	}
	if math.Abs(secondObj.X-(playerCenterX()+float64(cfg.Player.Size))) > 1e-9 {
		t.Errorf("Expected second platform pushed clear to %v, got %v",
			playerCenterX()+float64(cfg.Player.Size), secondObj.X)
	}
	if physics.SpeedX != 0 {
		t.Errorf("Expected SpeedX zeroed, got %v", physics.SpeedX)
	}
}

// Rising into a platform whose underside is above the player's feet zeroes
// the upward speed and pushes the world up, without clearing Jumping.
func TestRiseIntoOverhangZeroesUpwardSpeed(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	overhang := factory.CreatePlatform(e, playerCenterX(), playerCenterY()-44, 1, 2)

	physics := components.Physics.Get(player)
	physics.SpeedY = 5
	physics.Jumping = true

	resolveVertical(e, player, physics)

	if physics.SpeedY != 0 {
		t.Errorf("Expected upward speed zeroed, got %v", physics.SpeedY)
	}
	if !physics.Jumping {
		t.Error("Head bump must not count as a landing")
	}
	obj := components.Object.Get(overhang)
	if math.Abs(obj.Y-(playerCenterY()-64)) > 1e-9 {
		t.Errorf("Expected overhang pushed up to %v, got %v", playerCenterY()-64, obj.Y)
	}
}

// The underside branch pushes the world out even while the player is falling,
// but only zeroes the speed when it is upward. Pins the branch as written.
func TestOverhangWhileFallingKeepsDownwardSpeed(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	overhang := factory.CreatePlatform(e, playerCenterX(), playerCenterY()-44, 1, 2)

	physics := components.Physics.Get(player)
	physics.SpeedY = -2
	physics.Jumping = true

	resolveVertical(e, player, physics)

	if physics.SpeedY != -2 {
		t.Errorf("Expected downward speed kept at -2, got %v", physics.SpeedY)
	}
	obj := components.Object.Get(overhang)
	if math.Abs(obj.Y-(playerCenterY()-64)) > 1e-9 {
		t.Errorf("Expected overhang pushed up to %v, got %v", playerCenterY()-64, obj.Y)
	}
}

// Full jump arc: impulse, ascent, descent, landing back flush on the same
// platform with Jumping cleared and no residual drift.
func TestJumpAndLandReturnsToRest(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)
	top := playerCenterY() + float64(cfg.Player.Size)
	platform := factory.CreatePlatform(e, 96, top, 11, 5)

	physics := components.Physics.Get(player)
	playerObj := components.Object.Get(player)
	platObj := components.Object.Get(platform)

	// Settle one frame, then jump.
	stepFrame(e)
	stepFrame(e, cfg.ActionJump)
	if !physics.Jumping || physics.SpeedY <= 0 {
		t.Fatalf("Jump did not launch: Jumping=%v SpeedY=%v", physics.Jumping, physics.SpeedY)
	}

	landed := false
	for i := 0; i < 300; i++ {
		stepFrame(e)
		if !physics.Jumping && physics.SpeedY == 0 {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("Player never landed after jumping")
	}
	if math.Abs(platObj.Y-top) > 1e-6 {
		t.Errorf("Expected platform back flush at %v, got %v", top, platObj.Y)
	}
	if playerObj.X != playerCenterX() || playerObj.Y != playerCenterY() {
		t.Errorf("Player moved during the jump to (%v, %v)", playerObj.X, playerObj.Y)
	}
}

func TestRollRotationFollowsSpeed(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e)

	pd := components.Player.Get(player)
	physics := components.Physics.Get(player)

	stepFrame(e, cfg.ActionMoveLeft)

	want := -physics.SpeedX / (float64(cfg.C.TileSize) / 2) * cfg.Player.RollFactor
	if math.Abs(pd.Rotation-want) > 1e-12 {
		t.Errorf("Expected rotation %v, got %v", want, pd.Rotation)
	}
}
