package geometry

import "testing"

var (
	benchVec1 = New(3.9, -1.6, 8.3)
	benchVec2 = New(1.0, 14.2, 7.5)

	benchVecResult   Vector
	benchFloatResult float64
	benchErrResult   error
)

func BenchmarkVectorAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVec1.Add(benchVec2)
	}
}

func BenchmarkVectorSubtract(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVec1.Subtract(benchVec2)
	}
}

func BenchmarkVectorScale(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVec1.Scale(2.5)
	}
}

func BenchmarkVectorDot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult = benchVec1.Dot(benchVec2)
	}
}

func BenchmarkVectorCross(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVec1.Cross(benchVec2)
	}
}

func BenchmarkVectorMagnitude(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult = benchVec1.Magnitude()
	}
}

func BenchmarkVectorNormalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult, benchErrResult = benchVec1.Normalize()
	}
}

func BenchmarkVectorRound(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult, benchErrResult = benchVec1.Round(2)
	}
}
