package geometry

import "math"

const (
	Infinity = math.MaxFloat64
	Epsilon  = 1.19209e-07 // defined by clang for x86
)

// The canonical basis vectors.
var (
	UnitX = Vector{X: 1}
	UnitY = Vector{Y: 1}
	UnitZ = Vector{Z: 1}
)
