package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Palette is the fixed set of diffuse colors offered by the editor
var Palette = []core.Vec3{
	core.NewVec3(0.9, 0.2, 0.2), // red
	core.NewVec3(0.2, 0.9, 0.2), // green
	core.NewVec3(0.2, 0.2, 0.9), // blue
	core.NewVec3(0.9, 0.9, 0.2), // yellow
	core.NewVec3(0.9, 0.2, 0.9), // magenta
	core.NewVec3(0.2, 0.9, 0.9), // cyan
	core.NewVec3(0.9, 0.5, 0.2), // orange
	core.NewVec3(0.5, 0.2, 0.9), // purple
	core.NewVec3(0.8, 0.8, 0.8), // white
}

// EditConstraints limits what the editor may do to the selected shape
type EditConstraints struct {
	MinSize        float64 // Smallest sphere radius or box half-extent
	MaxSize        float64 // Largest sphere radius or box half-extent
	KeepAboveFloor bool    // Push shapes back above FloorY after every edit
	FloorY         float64 // Height of the floor
	DragSpeed      float64 // World units moved per pixel of drag
	ScaleUp        float64 // Factor applied for a positive scale step
	ScaleDown      float64 // Factor applied for a negative scale step
}

// DefaultEditConstraints returns the constraints used by the interactive scene
func DefaultEditConstraints() EditConstraints {
	return EditConstraints{
		MinSize:        0.2,
		MaxSize:        3.0,
		KeepAboveFloor: true,
		FloorY:         InteractiveFloorY,
		DragSpeed:      0.01,
		ScaleUp:        1.1,
		ScaleDown:      0.9,
	}
}

// Editor applies user edits to a scene's shapes and camera.
// Every edit method reports whether the scene changed.
type Editor struct {
	scene       *Scene
	constraints EditConstraints
	selected    int
}

// NewEditor creates an editor with nothing selected
func NewEditor(s *Scene, constraints EditConstraints) *Editor {
	return &Editor{scene: s, constraints: constraints, selected: -1}
}

// Select makes the shape at index the edit target. Out-of-range indices clear the selection.
func (e *Editor) Select(index int) bool {
	if index < 0 || index >= len(e.scene.Shapes) {
		e.selected = -1
		return false
	}
	e.selected = index
	return true
}

// Deselect clears the selection
func (e *Editor) Deselect() {
	e.selected = -1
}

// Selected returns the selected shape index
func (e *Editor) Selected() (int, bool) {
	return e.selected, e.selected >= 0
}

func (e *Editor) target() (geometry.Shape, bool) {
	if e.selected < 0 || e.selected >= len(e.scene.Shapes) {
		return nil, false
	}
	return e.scene.Shapes[e.selected], true
}

// Drag moves the selected shape in the camera plane by a mouse delta in pixels.
// Positive dy moves the shape down the screen.
func (e *Editor) Drag(dx, dy float64) bool {
	shape, ok := e.target()
	if !ok || (dx == 0 && dy == 0) {
		return false
	}

	_, right, up := e.scene.Camera.Basis()
	delta := right.Multiply(dx * e.constraints.DragSpeed).
		Subtract(up.Multiply(dy * e.constraints.DragSpeed))

	shape.Translate(delta)
	e.keepAboveFloor(shape)
	return true
}

// ScaleStep grows (step > 0) or shrinks (step < 0) the selected shape within the size limits
func (e *Editor) ScaleStep(step int) bool {
	shape, ok := e.target()
	if !ok || step == 0 {
		return false
	}

	factor := e.constraints.ScaleUp
	if step < 0 {
		factor = e.constraints.ScaleDown
	}

	switch s := shape.(type) {
	case *geometry.Sphere:
		radius := e.clampSize(s.Radius * factor)
		if radius == s.Radius {
			return false
		}
		s.Radius = radius
	case *geometry.Box:
		half := s.HalfSize()
		extent := math.Max(half.X, math.Max(half.Y, half.Z))
		if extent <= 0 {
			return false
		}
		target := e.clampSize(extent * factor)
		if target == extent {
			return false
		}
		s.Scale(target / extent)
	default:
		// Unbounded shapes have no size
		return false
	}

	e.keepAboveFloor(shape)
	return true
}

// SetPaletteColor replaces the diffuse color of the selected shape with Palette[index]
func (e *Editor) SetPaletteColor(index int) bool {
	shape, ok := e.target()
	if !ok || index < 0 || index >= len(Palette) {
		return false
	}

	m := shape.GetMaterial()
	m.Diffuse = Palette[index]
	shape.SetMaterial(m)
	return true
}

// StepReflectivity changes the reflectivity of the selected shape, kept in [0,1]
func (e *Editor) StepReflectivity(delta float64) bool {
	shape, ok := e.target()
	if !ok {
		return false
	}

	before := shape.GetMaterial()
	after := before.WithReflectivityStep(delta)
	if after.Reflectivity == before.Reflectivity {
		return false
	}
	shape.SetMaterial(after)
	return true
}

// RotateCamera turns the camera by yaw and pitch radians. A pitch beyond the limits is ignored.
func (e *Editor) RotateCamera(yaw, pitch float64) bool {
	changed := false
	if yaw != 0 {
		e.scene.Camera.Yaw(yaw)
		changed = true
	}
	if pitch != 0 && e.scene.Camera.Pitch(pitch) {
		changed = true
	}
	if changed {
		e.scene.CameraConfig = e.scene.Camera.Config()
	}
	return changed
}

func (e *Editor) clampSize(size float64) float64 {
	return math.Max(e.constraints.MinSize, math.Min(e.constraints.MaxSize, size))
}

// keepAboveFloor lifts the shape so its lowest point rests no lower than the floor
func (e *Editor) keepAboveFloor(shape geometry.Shape) {
	if !e.constraints.KeepAboveFloor {
		return
	}

	switch s := shape.(type) {
	case *geometry.Sphere:
		if lowest := e.constraints.FloorY + s.Radius; s.Center.Y < lowest {
			s.Center.Y = lowest
		}
	case *geometry.Box:
		if s.Min.Y < e.constraints.FloorY {
			s.Translate(core.NewVec3(0, e.constraints.FloorY-s.Min.Y, 0))
		}
	}
}
