package perspective

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Compose multiplies 'steps' left to right. Repeated multiplication applies
// transforms in reverse, so the last step is the first one a point sees.
func Compose(steps ...mgl32.Mat4) mgl32.Mat4 {
	ret := mgl32.Ident4()
	for _, step := range steps {
		ret = ret.Mul4(step)
	}
	return ret
}

// MakePose returns the world matrix of an object at (x, y, z), turned by
// 'yaw' radians about y after being turned 'pitch' radians about x.
func MakePose(x, y, z, yaw, pitch float32) mgl32.Mat4 {
	return Compose(
		mgl32.Translate3D(x, y, z),
		mgl32.HomogRotate3DY(yaw),
		mgl32.HomogRotate3DX(pitch),
	)
}
