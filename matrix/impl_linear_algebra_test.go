// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctmc/matrix"
)

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := MustRows(t, [][]float64{{1, 0, 2}, {0, 1, -1}})
	want := [][]float64{{1, 2, 0}, {3, 4, 2}, {5, 6, 4}}

	for name, pair := range map[string][2]matrix.Matrix{
		"dense":    {a, b},
		"fallback": {hide{a}, hide{b}},
	} {
		got, err := matrix.Mul(pair[0], pair[1])
		require.NoError(t, err, name)
		RequireClose(t, want, got, 0)
	}

	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScaleNorms(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, -2}, {3, 4}, {-5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{1, 3, -5}, {-2, 4, 6}}, at, 0)

	s, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{-2, 4}, {-6, -8}, {10, -12}}, s, 0)

	n1, err := matrix.Norm1(a)
	require.NoError(t, err)
	require.Equal(t, 12.0, n1)
	ninf, err := matrix.NormInf(a)
	require.NoError(t, err)
	require.Equal(t, 11.0, ninf)
}

func TestMatVecVecMat(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)

	z, err := matrix.VecMat([]float64{1, 1}, hide{a})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, z)

	_, err = matrix.VecMat([]float64{1}, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rs, err := matrix.RowSums(MustRows(t, twoState(1, 2)))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, rs)
}

func TestLUSolve(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	f, err := matrix.LUPivot(a)
	require.NoError(t, err)

	x, err := f.SolveVec([]float64{3, 2, 4})
	require.NoError(t, err)
	for i, v := range []float64{1, 1, 1} {
		require.InDelta(t, v, x[i], 1e-12)
	}

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	inv, err := matrix.Solve(hide{a}, id)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, id, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	id2, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	_, err = matrix.Solve(MustRows(t, twoState(1, 2)), id2)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.LUPivot(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1 + 1e-10, 2}})
	ok, err := matrix.AllClose(a, hide{b}, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
