package gq

import (
	"github.com/san-kum/quadgen/internal/array"
	"github.com/san-kum/quadgen/internal/quad"
)

// Default is the dispatcher behind the package-level functions: implicit QL
// with the default iteration budget and Vandermonde condition limit.
var Default = New()

func Rule(f quad.Family, n int) (quad.Rule, error) { return Default.Rule(f, n) }

func GQ(kind quad.Kind, a, b float64, x, w *array.Array1D[float64]) error {
	return Default.GQ(kind, a, b, x, w)
}

func GQN(kind quad.Kind, n int, a, b float64, x, w []float64) error {
	return Default.GQN(kind, n, a, b, x, w)
}

func GQGen(alpha, beta *array.Array1D[float64], mu0 float64, x, w *array.Array1D[float64]) error {
	return Default.GQGen(alpha, beta, mu0, x, w)
}

func VandermondeGQ(x, w, q *array.Array1D[float64]) error {
	return Default.VandermondeGQ(x, w, q)
}

func GCHB(kind, n int, x, w []float64) error { return Default.GCHB(kind, n, x, w) }

func Table(f quad.Family, orders []int) ([]quad.Rule, error) { return Default.Table(f, orders) }
