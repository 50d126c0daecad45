package css

// Unit is a CSS length unit.
type Unit int

const (
	UnitPx Unit = iota
	UnitPercent
)

// Length is a number with a unit, e.g. 320px or -50%.
type Length struct {
	Value float64
	Unit  Unit
}

func Px(v float64) Length      { return Length{Value: v, Unit: UnitPx} }
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }

func (l Length) String() string {
	return string(l.appendTo(nil))
}

func (l Length) appendTo(b []byte) []byte {
	b = appendNumber(b, l.Value)
	switch l.Unit {
	case UnitPercent:
		return append(b, '%')
	default:
		return append(b, "px"...)
	}
}

// Func is one transform function in a Transform. The set of functions is
// closed; see CenterAnchor, Translate, TranslateZ and Matrix3D.
type Func interface {
	appendFunc(b []byte) []byte
}

// CenterAnchor moves an element's reference point from its top-left corner
// to the middle of its own box.
type CenterAnchor struct{}

// The browser's parser is strict, and callers compare this text verbatim;
// keep the space after the comma.
const centerAnchorText = "translate(-50%, -50%)"

func (CenterAnchor) appendFunc(b []byte) []byte {
	return append(b, centerAnchorText...)
}

// Translate is a 2D translate(x,y).
type Translate struct {
	X, Y Length
}

func (t Translate) appendFunc(b []byte) []byte {
	b = append(b, "translate("...)
	b = t.X.appendTo(b)
	b = append(b, ',')
	b = t.Y.appendTo(b)
	return append(b, ')')
}

// TranslateZ is a translateZ(z) along the optical axis.
type TranslateZ struct {
	Z Length
}

func (t TranslateZ) appendFunc(b []byte) []byte {
	b = append(b, "translateZ("...)
	b = t.Z.appendTo(b)
	return append(b, ')')
}

// Matrix3D is a matrix3d(...) function.
type Matrix3D struct {
	M Matrix
}

func (m Matrix3D) appendFunc(b []byte) []byte {
	return appendMatrix(b, m.M)
}

// Transform is an ordered list of transform functions, written leftmost
// first. The browser applies the rightmost function to the element first.
//
// A Transform can only be built by the constructors below, each of which
// fixes the order its functions must appear in.
type Transform struct {
	funcs []Func
}

// ObjectTransform places an element at pose m, about the element's center.
// The anchor is leftmost so that it always works in the element's own box.
func ObjectTransform(m Matrix) Transform {
	return Transform{funcs: []Func{CenterAnchor{}, Matrix3D{M: m}}}
}

// OrthographicCamera is the projection matrix alone: there is no vanishing
// point to recenter around.
func OrthographicCamera(m Matrix) Transform {
	return Transform{funcs: []Func{Matrix3D{M: m}}}
}

// PerspectiveCamera pushes the camera plane back by depth pixels (in camera
// space, so before m) and recenters the projected origin on the container
// (in screen space, so after m).
func PerspectiveCamera(depth, halfWidth, halfHeight float64, m Matrix) Transform {
	return Transform{funcs: []Func{
		TranslateZ{Z: Px(depth)},
		Matrix3D{M: m},
		Translate{X: Px(halfWidth), Y: Px(halfHeight)},
	}}
}

// Funcs returns a copy of t's functions in written order.
func (t Transform) Funcs() []Func {
	return append([]Func(nil), t.funcs...)
}

// AppendTo appends t's text to b.
func (t Transform) AppendTo(b []byte) []byte {
	for _, f := range t.funcs {
		b = f.appendFunc(b)
	}
	return b
}

func (t Transform) String() string {
	return string(t.AppendTo(make([]byte, 0, 192)))
}
