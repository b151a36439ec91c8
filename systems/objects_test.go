package systems

import (
	"math"
	"testing"

	"github.com/automoto/rollaway/components"
	"github.com/automoto/rollaway/systems/factory"
)

func TestCloudDriftOscillatesAndStacksWithScroll(t *testing.T) {
	e := newTestECS()
	cloud := factory.CreateCloud(e, 200, 100)
	obj := components.Object.Get(cloud)

	// Half a cycle out: the cloud has drifted right.
	for i := 0; i < 240; i++ {
		UpdateObjects(e)
	}
	if obj.X <= 200+20 {
		t.Errorf("Expected cloud near full drift amplitude, got X %v", obj.X)
	}

	// A world shift moves the cloud too; the drift keeps running relative
	// to the shifted position instead of snapping back.
	MoveWorld(e, -50, 0)
	for i := 0; i < 240; i++ {
		UpdateObjects(e)
	}
	if math.Abs(obj.X-150) > 1.0 {
		t.Errorf("Expected cloud back near %v after a full cycle, got %v", 150.0, obj.X)
	}

	if obj.Y != 100 {
		t.Errorf("Drift is horizontal only, Y moved to %v", obj.Y)
	}
}
