package projection

import (
	"github.com/MobRulesGames/css3d/css"
)

// Mode is how a camera container projects its children: Orthographic or
// Perspective.
type Mode interface {
	transform() css.Transform
}

// Orthographic carries only the projection matrix.
type Orthographic struct {
	Matrix css.Matrix
}

// Perspective also carries the depth scale and the half-viewport size used
// to recenter screen space on the container.
type Perspective struct {
	YScale     float64
	HalfWidth  float64
	HalfHeight float64
	Matrix     css.Matrix
}

var _ Mode = Orthographic{}
var _ Mode = Perspective{}

func (o Orthographic) transform() css.Transform {
	return css.OrthographicCamera(o.Matrix)
}

func (p Perspective) transform() css.Transform {
	return css.PerspectiveCamera(p.YScale, p.HalfWidth, p.HalfHeight, p.Matrix)
}
