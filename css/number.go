package css

import (
	"math"
	"strconv"
)

// appendNumber writes v the way a browser's script engine stringifies a
// number: the shortest decimal that reads back as v, switching to exponent
// form below 1e-6 and from 1e21 up.
func appendNumber(b []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(b, "NaN"...)
	case math.IsInf(v, 1):
		return append(b, "Infinity"...)
	case math.IsInf(v, -1):
		return append(b, "-Infinity"...)
	case v == 0:
		// Covers negative zero too.
		return append(b, '0')
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.AppendFloat(b, v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits; scripts don't.
	start := len(b)
	b = strconv.AppendFloat(b, v, 'e', -1, 64)
	for i := start; i < len(b); i++ {
		if b[i] != 'e' {
			continue
		}
		j := i + 2 // past the sign
		for j < len(b)-1 && b[j] == '0' {
			b = append(b[:j], b[j+1:]...)
		}
		break
	}
	return b
}
