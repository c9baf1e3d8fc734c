package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestInteractive(height int) (*InteractiveRenderer, *fakeClock) {
	s := newTestScene(16, height, 1)
	quality := integrator.DefaultQualityConfig()
	quality.InteractiveShadowSkipProbability = 0

	ir := NewInteractiveRenderer(s, quality, DefaultInteractiveConfig(), nil)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	ir.SetClock(clock.Now)
	return ir, clock
}

func TestInteractive_FirstFrameIsFull(t *testing.T) {
	ir, _ := newTestInteractive(100)

	result := ir.RenderFrame()
	if !result.Full || result.Start != 0 || result.End != 100 {
		t.Errorf("Expected full first frame, got %+v", result)
	}
}

func TestInteractive_ScanlineBands(t *testing.T) {
	ir, clock := newTestInteractive(100)
	ir.RenderFrame()

	tests := []struct {
		start, end int
	}{
		{0, 60},
		{60, 100},
		{0, 60},
	}

	for i, tt := range tests {
		clock.Advance(100 * time.Millisecond)
		result := ir.RenderFrame()
		if result.Full {
			t.Fatalf("Frame %d: expected a partial frame", i)
		}
		if result.Start != tt.start || result.End != tt.end {
			t.Errorf("Frame %d: expected rows [%d,%d), got [%d,%d)", i, tt.start, tt.end, result.Start, result.End)
		}
		if result.Stats.Rows != tt.end-tt.start {
			t.Errorf("Frame %d: expected %d rows rendered, got %d", i, tt.end-tt.start, result.Stats.Rows)
		}
	}
}

func TestInteractive_FullRenderInterval(t *testing.T) {
	ir, clock := newTestInteractive(100)
	ir.RenderFrame()

	clock.Advance(500 * time.Millisecond)
	if ir.RenderFrame().Full {
		t.Error("Expected partial frame before the interval elapsed")
	}

	clock.Advance(600 * time.Millisecond)
	if !ir.RenderFrame().Full {
		t.Error("Expected full frame once the interval elapsed")
	}
}

func TestInteractive_RequestFullRender(t *testing.T) {
	ir, clock := newTestInteractive(100)
	ir.RenderFrame()

	clock.Advance(10 * time.Millisecond)
	ir.RequestFullRender()
	if !ir.RenderFrame().Full {
		t.Error("Expected a requested full render")
	}

	clock.Advance(10 * time.Millisecond)
	if ir.RenderFrame().Full {
		t.Error("Expected the request to be consumed")
	}
}

func TestInteractive_LeavingInteractiveForcesFullRender(t *testing.T) {
	ir, clock := newTestInteractive(100)
	ir.RenderFrame()

	ir.SetInteractive(true)
	clock.Advance(10 * time.Millisecond)
	if ir.RenderFrame().Full {
		t.Error("Expected entering interactive mode not to force a full render")
	}
	if !ir.Interactive() {
		t.Error("Expected interactive mode on")
	}

	ir.SetInteractive(false)
	clock.Advance(10 * time.Millisecond)
	if !ir.RenderFrame().Full {
		t.Error("Expected a full render after leaving interactive mode")
	}
}

func TestInteractive_Pick(t *testing.T) {
	ir, _ := newTestInteractive(16)

	tests := []struct {
		name  string
		x, y  int
		index int
		ok    bool
	}{
		{"sphere at center", 8, 8, 0, true},
		{"floor at bottom", 8, 15, 1, true},
		{"sky at top", 8, 0, -1, false},
		{"outside image", 40, 8, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := ir.Pick(tt.x, tt.y)
			if index != tt.index || ok != tt.ok {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.index, tt.ok, index, ok)
			}
		})
	}
}

func TestInteractive_Resize(t *testing.T) {
	ir, clock := newTestInteractive(100)
	ir.RenderFrame()

	ir.Resize(32, 20)
	if ir.Frame().Bounds().Dx() != 32 || ir.Frame().Bounds().Dy() != 20 {
		t.Errorf("Expected 32x20 frame, got %v", ir.Frame().Bounds())
	}

	clock.Advance(10 * time.Millisecond)
	result := ir.RenderFrame()
	if !result.Full || result.End != 20 {
		t.Errorf("Expected full 20-row frame after resize, got %+v", result)
	}
}
