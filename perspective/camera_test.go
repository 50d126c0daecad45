package perspective_test

import (
	"math"
	"testing"

	"github.com/MobRulesGames/css3d/perspective"
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCamera(t *testing.T) {
	Convey("a camera ten units back on z looking at the origin", t, func() {
		cam := perspective.NewCamera(800, 600)
		cam.Eye = mgl32.Vec3{0, 0, 10}
		cam.FovY = 90

		Convey("has an axis-aligned view", func() {
			view := cam.View()
			So(view, ShouldResemble, mgl32.Mat4{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
				0, 0, -10, 1,
			})
		})

		Convey("puts the origin ten units in front of itself", func() {
			view := cam.View()
			origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
			So(origin.Z(), ShouldEqual, float32(-10))
		})

		Convey("has a depth of half the viewport height at 90 degrees", func() {
			So(cam.Depth(), ShouldAlmostEqual, 300, 1e-3)
		})

		Convey("has a narrower depth with a wider field of view", func() {
			cam.FovY = 120
			So(cam.Depth(), ShouldBeLessThan, 300)
		})

		Convey("projects with the viewport's aspect", func() {
			proj := cam.Projection()
			So(proj[0]*cam.Aspect(), ShouldAlmostEqual, proj[5], 1e-6)
			So(proj[11], ShouldEqual, float32(-1))
		})
	})

	Convey("a camera off to the side", t, func() {
		cam := perspective.NewCamera(640, 480)
		cam.Eye = mgl32.Vec3{10, 0, 0}

		Convey("still sees its target straight ahead", func() {
			view := cam.View()
			target := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
			So(target.X(), ShouldAlmostEqual, 0, 1e-5)
			So(target.Y(), ShouldAlmostEqual, 0, 1e-5)
			So(target.Z(), ShouldAlmostEqual, -10, 1e-5)
		})
	})

	Convey("an orthographic camera", t, func() {
		cam := perspective.NewCamera(800, 600)
		cam.Orthographic = true
		cam.Zoom = 2

		Convey("maps the zoomed viewport onto clip space", func() {
			proj := cam.Projection()
			So(proj[0], ShouldAlmostEqual, 2.0/400, 1e-6)
			So(proj[5], ShouldAlmostEqual, 2.0/300, 1e-6)
			So(proj[15], ShouldEqual, float32(1))
		})
	})

	Convey("a zero-height viewport does not divide by zero", t, func() {
		cam := perspective.NewCamera(800, 0)
		So(cam.Aspect(), ShouldEqual, float32(1))
	})
}

func TestMakePose(t *testing.T) {
	Convey("a pose with no turn is a translation", t, func() {
		pose := perspective.MakePose(1, 2, 3, 0, 0)
		So(pose[12], ShouldEqual, float32(1))
		So(pose[13], ShouldEqual, float32(2))
		So(pose[14], ShouldEqual, float32(3))
		So(pose[0], ShouldAlmostEqual, 1, 1e-6)
	})

	Convey("Compose of nothing is the identity", t, func() {
		So(perspective.Compose(), ShouldResemble, mgl32.Ident4())
	})
}
