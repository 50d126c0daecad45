// Package perspective reconciles scene space (origin at the center, y up)
// with CSS space (origin at the top-left, y down) and produces the matrices
// the projectors expect.
package perspective

import (
	"math"

	"github.com/MobRulesGames/css3d/css"
	"github.com/go-gl/mathgl/mgl32"
)

// FromMat4 widens an mgl32 matrix. Both are column-major; element order is
// unchanged.
func FromMat4(m *mgl32.Mat4) css.Matrix {
	var ret css.Matrix
	for i := range m {
		ret[i] = float64(m[i])
	}
	return ret
}

// float32 trig leaves residue around 1e-8 where there should be zeros;
// browsers then get exponent-form numbers for no reason.
const snapEpsilon = 1e-6

// snap zeroes residue. Within each basis column the cut-off is relative to
// the column's length, so a tiny scale survives; translation and the
// bottom row, already in pixels, use the plain cut-off.
func snap(m css.Matrix) css.Matrix {
	for col := 0; col < 4; col++ {
		limit := snapEpsilon
		if col < 3 {
			x, y, z := m[col*4], m[col*4+1], m[col*4+2]
			limit = snapEpsilon * math.Sqrt(x*x+y*y+z*z)
		}
		for row := 0; row < 4; row++ {
			i := col*4 + row
			cut := limit
			if row == 3 {
				cut = snapEpsilon
			}
			if math.Abs(m[i]) < cut {
				m[i] = 0
			}
		}
	}
	return m
}

// Depth reads the perspective depth, in pixels, out of a projection matrix
// for a viewport 'height' pixels tall.
func Depth(proj *mgl32.Mat4, height float64) float64 {
	return float64(proj[5]) * height / 2
}

// CameraCSSMatrix turns a view matrix into CSS space by flipping y on the
// way out (rows, so elements 1, 5, 9 and 13).
func CameraCSSMatrix(view *mgl32.Mat4) css.Matrix {
	m := FromMat4(view)
	m[1], m[5], m[9], m[13] = -m[1], -m[5], -m[9], -m[13]
	return snap(m)
}

// ObjectCSSMatrix turns an object's world matrix into CSS space. The
// element's own y axis is flipped (column 1, so elements 4 through 7) so that
// its content stays upright once the camera flips the world.
func ObjectCSSMatrix(world *mgl32.Mat4) css.Matrix {
	m := FromMat4(world)
	m[4], m[5], m[6], m[7] = -m[4], -m[5], -m[6], -m[7]
	return snap(m)
}

// BillboardCSSMatrix keeps the position and scale of 'world' but replaces
// its rotation with the camera's, so that the element always faces the
// viewer.
func BillboardCSSMatrix(world, view *mgl32.Mat4) css.Matrix {
	// The inverse of the view's rotation is its transpose.
	m := view.Mat3().Transpose().Mat4()

	for col := 0; col < 3; col++ {
		s := world.Col(col).Vec3().Len()
		m.SetCol(col, m.Col(col).Mul(s))
	}

	m.SetCol(3, mgl32.Vec4{world[12], world[13], world[14], 1})
	return ObjectCSSMatrix(&m)
}

// OrthographicCSSMatrix is the complete camera matrix for an orthographic
// camera. With no perspective step, the recentering onto the middle of the
// viewport folds into the one matrix. Like the perspective camera's
// transform, it expects the camera container to be viewport-sized with the
// default transform origin, its center.
func OrthographicCSSMatrix(c *Camera) css.Matrix {
	zoom := c.zoom()

	// Read right to left: undo the browser's shift onto the transform
	// origin so that container positions are scene positions again, view,
	// flip y, then zoom.
	xfrm := Compose(
		mgl32.Scale3D(zoom, zoom, 1),
		mgl32.Scale3D(1, -1, 1),
		c.View(),
		mgl32.Translate3D(c.Width/2, c.Height/2, 0),
	)

	return snap(FromMat4(&xfrm))
}
