package perspective

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes a viewer in scene space and the viewport, in CSS pixels,
// that it renders into.
type Camera struct {
	// Vertical field of view, in degrees. Ignored when Orthographic.
	FovY      float32
	Near, Far float32

	Width, Height float32

	Eye, Target, Up mgl32.Vec3

	Orthographic bool
	// Pixels per scene unit when Orthographic.
	Zoom float32
}

func NewCamera(width, height float32) *Camera {
	return &Camera{
		FovY:   50,
		Near:   1,
		Far:    5000,
		Width:  width,
		Height: height,
		Eye:    mgl32.Vec3{0, 0, 1000},
		Up:     mgl32.Vec3{0, 1, 0},
		Zoom:   1,
	}
}

func (c *Camera) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return c.Width / c.Height
}

func (c *Camera) zoom() float32 {
	if c.Zoom == 0 {
		return 1
	}
	return c.Zoom
}

// Projection returns the clip-space projection, OpenGL conventions.
func (c *Camera) Projection() mgl32.Mat4 {
	if c.Orthographic {
		hw := c.Width / (2 * c.zoom())
		hh := c.Height / (2 * c.zoom())
		return mgl32.Ortho(-hw, hw, -hh, hh, c.Near, c.Far)
	}

	// Same matrix as mgl32.Perspective, but the focal length is taken in
	// float64: a float32 half-angle makes a 90 degree camera's depth
	// 299.99998px instead of 300px.
	f := float32(1 / math.Tan(float64(c.FovY)*math.Pi/360))
	nf := 1 / (c.Near - c.Far)
	return mgl32.Mat4{
		f / c.Aspect(), 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) * nf, -1,
		0, 0, 2 * c.Far * c.Near * nf, 0,
	}
}

// View returns the world-to-camera transform: the camera sits at Eye,
// looking at Target, with Up roughly up.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Depth is the distance, in pixels, at which one scene unit spans one CSS
// pixel under this camera.
func (c *Camera) Depth() float64 {
	proj := c.Projection()
	return Depth(&proj, float64(c.Height))
}
