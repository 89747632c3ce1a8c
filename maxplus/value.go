package maxplus

import "math"

// MinusInfinity is the max-plus zero (⊕-identity): "no dependency".
var MinusInfinity = math.Inf(-1)

// Unit is the max-plus one (⊗-identity): a zero delay.
const Unit = 0.0

// IsMinusInfinity reports whether v is the max-plus zero.
func IsMinusInfinity(v float64) bool { return math.IsInf(v, -1) }

// Max is the max-plus sum a ⊕ b.
func Max(a, b float64) float64 {
	if a >= b || math.IsNaN(b) {
		return a
	}

	return b
}
