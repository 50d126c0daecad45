// Package css renders transform matrices and transform-function lists as
// CSS text.
//
// Matrices are column-major, which is the order matrix3d() takes its sixteen
// arguments in. Nothing here transposes.
package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix is a 4x4 homogeneous transform in column-major order.
type Matrix [16]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FormatMatrix renders m as matrix3d(n0,n1,...,n15). No element is checked;
// NaN and infinities are written out as a script engine would spell them.
func FormatMatrix(m Matrix) string {
	return string(appendMatrix(make([]byte, 0, 128), m))
}

func appendMatrix(b []byte, m Matrix) []byte {
	b = append(b, "matrix3d("...)
	for i, v := range m {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendNumber(b, v)
	}
	return append(b, ')')
}

// ParseMatrix3D reads back the output of FormatMatrix. Whitespace around the
// arguments is tolerated, as are the 'Infinity' and 'NaN' spellings.
func ParseMatrix3D(s string) (Matrix, error) {
	var m Matrix

	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "matrix3d(") || !strings.HasSuffix(body, ")") {
		return m, fmt.Errorf("not a matrix3d() function: %q", s)
	}
	body = body[len("matrix3d(") : len(body)-1]

	args := strings.Split(body, ",")
	if len(args) != len(m) {
		return m, fmt.Errorf("matrix3d() needs %d arguments, got %d in %q", len(m), len(args), s)
	}

	for i, arg := range args {
		v, err := parseNumber(strings.TrimSpace(arg))
		if err != nil {
			return m, fmt.Errorf("matrix3d() argument %d: %w", i, err)
		}
		m[i] = v
	}
	return m, nil
}

func parseNumber(s string) (float64, error) {
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
