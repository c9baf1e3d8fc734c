package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const (
	// Pitch limits expressed as the allowed range of forward·up
	maxPitchUp   = 0.9
	maxPitchDown = -0.8
)

// CameraConfig contains all parameters needed to construct a pinhole camera
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // World up direction
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	VFov   float64   // Vertical field of view in degrees
}

// Camera generates primary rays for a pinhole camera
type Camera struct {
	config  CameraConfig
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	scale   float64 // tan(vfov / 2)
	aspect  float64 // width / height
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.updateBasis()
	return c
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.LookAt.IsZero() {
		result.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	return result
}

// updateBasis rebuilds the orthonormal basis and projection scale
func (c *Camera) updateBasis() {
	c.forward = c.config.LookAt.Subtract(c.config.Center).Normalize()
	c.right = c.forward.Cross(c.config.Up).Normalize()
	c.up = c.right.Cross(c.forward)
	c.scale = math.Tan(c.config.VFov * math.Pi / 180.0 * 0.5)
	c.aspect = 1
	if c.config.Height > 0 {
		c.aspect = float64(c.config.Width) / float64(c.config.Height)
	}
}

// GetRay returns the primary ray through the center of pixel (x, y); y grows downward
func (c *Camera) GetRay(x, y int) core.Ray {
	ndcX := (2.0*(float64(x)+0.5)/float64(c.config.Width) - 1.0) * c.aspect * c.scale
	ndcY := (1.0 - 2.0*(float64(y)+0.5)/float64(c.config.Height)) * c.scale

	direction := c.forward.Add(c.right.Multiply(ndcX)).Add(c.up.Multiply(ndcY))
	return core.NewRay(c.config.Center, direction)
}

// Config returns the current camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Basis returns the forward, right and up unit vectors
func (c *Camera) Basis() (forward, right, up core.Vec3) {
	return c.forward, c.right, c.up
}

// Resize changes the image dimensions the camera projects onto
func (c *Camera) Resize(width, height int) {
	c.config.Width = width
	c.config.Height = height
	c.updateBasis()
}

// Yaw rotates the view direction around the world Y axis by angle radians
func (c *Camera) Yaw(angle float64) {
	distance := c.config.LookAt.Subtract(c.config.Center).Length()
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	f := c.forward
	newForward := core.NewVec3(
		f.X*cosA-f.Z*sinA,
		f.Y,
		f.X*sinA+f.Z*cosA,
	)
	c.config.LookAt = c.config.Center.Add(newForward.Multiply(distance))
	c.updateBasis()
}

// Pitch tilts the view direction toward world up by angle radians.
// The rotation is refused (false) when it would look too far up or down.
func (c *Camera) Pitch(angle float64) bool {
	worldUp := c.config.Up.Normalize()
	candidate := c.forward.Multiply(math.Cos(angle)).Add(worldUp.Multiply(math.Sin(angle))).Normalize()

	elevation := candidate.Dot(worldUp)
	if elevation >= maxPitchUp || elevation <= maxPitchDown {
		return false
	}

	distance := c.config.LookAt.Subtract(c.config.Center).Length()
	c.config.LookAt = c.config.Center.Add(candidate.Multiply(distance))
	c.updateBasis()
	return true
}
