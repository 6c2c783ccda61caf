package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoys(t *testing.T) {
	tests := []struct {
		n    int
		x    float64
		want float64
	}{
		{0, 0, 1},
		{1, 0, 1.0 / 3},
		{0, 1, math.Sqrt(math.Pi) / 2 * math.Erf(1)},
		{0, 30, math.Sqrt(math.Pi/30) / 2},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, boys(test.n, test.x), 1e-10,
			"F%d(%g)", test.n, test.x)
	}
}

func h2Integrals(t *testing.T) ([]BasisFunction, *AOIntegrals) {
	t.Helper()
	mol := DefaultMolecule()
	basis, err := BuildBasis(mol)
	require.NoError(t, err)
	charges, centers, err := nuclei(mol)
	require.NoError(t, err)
	return basis, ComputeIntegrals(basis, charges, centers)
}

func TestComputeIntegrals(t *testing.T) {
	basis, ao := h2Integrals(t)
	require.Len(t, basis, 2)

	t.Run("overlap", func(t *testing.T) {
		assert.InDelta(t, 1.0, ao.S.At(0, 0), 1e-12)
		assert.InDelta(t, 1.0, ao.S.At(1, 1), 1e-12)
		assert.InDelta(t, 0.658957120274098, ao.S.At(0, 1), 1e-7)
	})

	t.Run("core hamiltonian", func(t *testing.T) {
		h := ao.Hcore()
		assert.InDelta(t, -1.1200511418451313, h.At(0, 0), 1e-7)
		assert.InDelta(t, h.At(0, 0), h.At(1, 1), 1e-12)
		assert.InDelta(t, -0.9577322214043127, h.At(0, 1), 1e-7)
	})

	t.Run("nuclear repulsion", func(t *testing.T) {
		assert.InDelta(t, 0.713753993687618, ao.Enuc, 1e-9)
	})

	t.Run("repulsion", func(t *testing.T) {
		assert.InDelta(t, 0.7746059439198977, ao.ERI[0][0][0][0], 1e-7)
		assert.InDelta(t, 0.5694684067537819, ao.ERI[0][0][1][1], 1e-7)
		assert.InDelta(t, 0.2966631722990007, ao.ERI[0][1][0][1], 1e-7)
		assert.Equal(t, ao.ERI[0][1][0][1], ao.ERI[1][0][1][0])
		assert.Equal(t, ao.ERI[0][0][1][1], ao.ERI[1][1][0][0])
	})
}

func TestBuildBasis(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		mol := DefaultMolecule()
		mol.Basis = "STO-3G"
		mol.Atoms[1].Symbol = "h"
		basis, err := BuildBasis(mol)
		require.NoError(t, err)
		assert.Len(t, basis, 2)
	})

	t.Run("split valence", func(t *testing.T) {
		mol := DefaultMolecule()
		mol.Basis = "6-31g"
		basis, err := BuildBasis(mol)
		require.NoError(t, err)
		require.Len(t, basis, 4)
		for _, bf := range basis {
			assert.InDelta(t, 1.0, overlap(bf, bf), 1e-12)
		}
	})

	t.Run("unknown basis", func(t *testing.T) {
		mol := DefaultMolecule()
		mol.Basis = "cc-pvtz"
		_, err := BuildBasis(mol)
		assert.ErrorIs(t, err, ErrUnknownBasis)
	})

	t.Run("unknown element", func(t *testing.T) {
		mol := DefaultMolecule()
		mol.Atoms[0].Symbol = "Li"
		_, err := BuildBasis(mol)
		assert.ErrorIs(t, err, ErrUnknownElement)
	})
}
