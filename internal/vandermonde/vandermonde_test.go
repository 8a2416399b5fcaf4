package vandermonde

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/quadgen/internal/quad"
)

func TestSolve_Trapezoid(t *testing.T) {
	w, err := Solve([]float64{0, 1}, []float64{1, 0.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, w, 1e-15)
}

func TestSolve_ReproducesGaussWeights(t *testing.T) {
	// two-point Gauss-Legendre nodes with Legendre moments
	x := 1 / math.Sqrt(3)
	w, err := Solve([]float64{-x, x}, []float64{2, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, w, 1e-14)
}

func TestSolve_UnorderedNodes(t *testing.T) {
	// moments of weight 1 on [0,1]
	x := []float64{1, 0, 0.5}
	q := []float64{1, 0.5, 1.0 / 3}
	w, err := Solve(x, q)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 6, 1.0 / 6, 4.0 / 6}, w, 1e-14)
}

func TestSolve_DoesNotMutate(t *testing.T) {
	x := []float64{0, 0.25, 1}
	q := []float64{1, 0.5, 1.0 / 3}
	xc := append([]float64(nil), x...)
	qc := append([]float64(nil), q...)
	_, err := Solve(x, q)
	require.NoError(t, err)
	assert.Equal(t, xc, x)
	assert.Equal(t, qc, q)
}

func TestSolve_DuplicateNodes(t *testing.T) {
	_, err := Solve([]float64{0.3, 0.1, 0.3}, []float64{1, 0.5, 0.3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, quad.ErrSingularSystem))

	var se *quad.SingularError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, [2]int{0, 2}, se.Duplicate)
}

func TestSolve_IllConditioned(t *testing.T) {
	x := []float64{0, 1, 1 + 1e-12}
	_, err := New(1e8).Solve(x, []float64{1, 1, 1})

	var se *quad.SingularError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, [2]int{-1, -1}, se.Duplicate)
	assert.Greater(t, se.Condition, 1e8)
}

func TestSolve_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		x, q []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []float64{0, 1}, []float64{1}},
		{"nan node", []float64{0, math.NaN()}, []float64{1, 0.5}},
		{"inf moment", []float64{0, 1}, []float64{1, math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.x, tt.q)
			assert.ErrorIs(t, err, quad.ErrConfiguration)
		})
	}
}

func TestNewtonCotes(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		lo, hi float64
		closed bool
		x, w   []float64
	}{
		{"trapezoid", 2, 0, 2, true, []float64{0, 2}, []float64{1, 1}},
		{"simpson", 3, 0, 1, true, []float64{0, 0.5, 1}, []float64{1.0 / 6, 4.0 / 6, 1.0 / 6}},
		{"simpson 3/8", 4, -1, 1, true, []float64{-1, -1.0 / 3, 1.0 / 3, 1}, []float64{0.25, 0.75, 0.75, 0.25}},
		{"midpoint", 1, -1, 1, false, []float64{0}, []float64{2}},
		{"open two point", 2, -1, 1, false, []float64{-1.0 / 3, 1.0 / 3}, []float64{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewtonCotes(tt.n, tt.lo, tt.hi, tt.closed)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.x, r.X, 1e-15)
			assert.InDeltaSlice(t, tt.w, r.W, 1e-14)
		})
	}
}

func TestNewtonCotes_ExactOnPolynomials(t *testing.T) {
	for n := 2; n <= 9; n++ {
		r, err := NewtonCotes(n, 1, 3, true)
		require.NoError(t, err)
		// degree n-1 polynomials integrate exactly
		f := func(x float64) float64 { return math.Pow(x, float64(n-1)) }
		want := (math.Pow(3, float64(n)) - 1) / float64(n)
		assert.InDelta(t, want, r.Integrate(f), 1e-10*want, "n=%d", n)
	}
}

func TestNewtonCotes_Errors(t *testing.T) {
	_, err := NewtonCotes(0, 0, 1, true)
	assert.ErrorIs(t, err, quad.ErrConfiguration)

	_, err = NewtonCotes(1, 0, 1, true)
	assert.ErrorIs(t, err, quad.ErrConfiguration)

	_, err = NewtonCotes(3, 1, 1, true)
	assert.ErrorIs(t, err, quad.ErrConfiguration)

	_, err = NewtonCotes(3, 2, 1, false)
	assert.ErrorIs(t, err, quad.ErrConfiguration)
}

func BenchmarkSolve(b *testing.B) {
	x := make([]float64, 12)
	q := make([]float64, 12)
	for i := range x {
		x[i] = float64(i) / 11
		q[i] = 1 / float64(i+1)
	}
	for i := 0; i < b.N; i++ {
		Solve(x, q)
	}
}

func TestClenshawCurtis(t *testing.T) {
	r, err := ClenshawCurtis(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, r.X, 1e-15)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 4.0 / 3, 1.0 / 3}, r.W, 1e-15)

	r, err = ClenshawCurtis(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, r.W)

	_, err = ClenshawCurtis(0)
	assert.ErrorIs(t, err, quad.ErrConfiguration)
}

func TestClenshawCurtis_AgreesWithSolve(t *testing.T) {
	for _, n := range []int{2, 4, 5, 8, 11} {
		r, err := ClenshawCurtis(n)
		require.NoError(t, err)

		q := make([]float64, n)
		for j := 0; j < n; j += 2 {
			q[j] = 2 / float64(j+1)
		}
		w, err := Solve(r.X, q)
		require.NoError(t, err, "n=%d", n)
		assert.InDeltaSlice(t, w, r.W, 1e-12, "n=%d", n)

		for i := 1; i < n; i++ {
			assert.Greater(t, r.X[i], r.X[i-1])
		}
	}
}
