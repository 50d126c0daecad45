// Package projection writes object and camera transforms onto DOM elements so
// that flat elements render as objects in a 3D scene.
//
// Every call is one immediate write. Nothing is validated, cached or
// retained; call order across elements (a container's perspective and
// transform before its children's) is the caller's business.
package projection

import (
	"github.com/MobRulesGames/css3d/css"
	"github.com/MobRulesGames/css3d/dom"
	"github.com/MobRulesGames/css3d/logging"
)

// SetObjectTransform poses e at m, relative to its camera container, about
// e's own center. The previous transform is replaced, not composed with.
func SetObjectTransform(e dom.Element, m css.Matrix) {
	writeTransform(e, css.ObjectTransform(m))
}

// SetupPerspective sets the vanishing-point distance, in pixels, for
// everything inside e. Zero and negative distances are written as given.
func SetupPerspective(e dom.Element, distance float64) {
	value := css.Px(distance).String()
	logging.Trace("projection.SetupPerspective", "perspective", value)
	e.SetPerspective(value)
}

// SetupCameraOrthographic makes e an orthographic camera with projection m.
func SetupCameraOrthographic(e dom.Element, m css.Matrix) {
	writeTransform(e, css.OrthographicCamera(m))
}

// SetupCameraPerspective makes e a perspective camera. yScale is the depth,
// in pixels, at which one scene unit is one pixel; halfWidth and halfHeight
// recenter the projection on e, since the browser projects around e's
// top-left corner.
func SetupCameraPerspective(e dom.Element, yScale, halfWidth, halfHeight float64, m css.Matrix) {
	writeTransform(e, css.PerspectiveCamera(yScale, halfWidth, halfHeight, m))
}

// SetupCamera applies mode to e through the matching entry point.
func SetupCamera(e dom.Element, mode Mode) {
	writeTransform(e, mode.transform())
}

func writeTransform(e dom.Element, xfrm css.Transform) {
	value := xfrm.String()
	logging.Trace("projection.writeTransform", "transform", value)
	e.SetTransform(value)
}
