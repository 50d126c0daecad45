package scenetest

import (
	"github.com/MobRulesGames/css3d/perspective"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilder is a fluent way to describe a test camera.
//
//	cam := scenetest.Camera().ForSize(640, 480).AtEye(0, 0, 240).Build()
type CameraBuilder struct {
	cam perspective.Camera
}

// Camera starts from a 90 degree perspective camera 300 units back on z,
// looking at the origin through an 800x600 viewport. At that distance one
// scene unit is one pixel.
func Camera() CameraBuilder {
	cam := perspective.NewCamera(800, 600)
	cam.FovY = 90
	cam.Eye = mgl32.Vec3{0, 0, 300}
	return CameraBuilder{cam: *cam}
}

func (b CameraBuilder) ForSize(width, height float32) CameraBuilder {
	b.cam.Width, b.cam.Height = width, height
	return b
}

func (b CameraBuilder) AtEye(x, y, z float32) CameraBuilder {
	b.cam.Eye = mgl32.Vec3{x, y, z}
	return b
}

func (b CameraBuilder) LookingAt(x, y, z float32) CameraBuilder {
	b.cam.Target = mgl32.Vec3{x, y, z}
	return b
}

func (b CameraBuilder) WithFov(degrees float32) CameraBuilder {
	b.cam.FovY = degrees
	return b
}

func (b CameraBuilder) Orthographic(zoom float32) CameraBuilder {
	b.cam.Orthographic = true
	b.cam.Zoom = zoom
	return b
}

func (b CameraBuilder) Build() *perspective.Camera {
	cam := b.cam
	return &cam
}
