package main

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHamiltonian(t *testing.T) {
	op, err := ReadHamiltonian("testfiles/hamiltonian.txt")
	require.NoError(t, err)
	assert.Equal(t, 15, op.Len())
	assert.Equal(t, 4, op.NQubits())
	assert.Equal(t, complex(-0.09886396933553224, 0), op.Coefficient(nil))

	want, err := os.ReadFile("testfiles/hamiltonian.txt")
	require.NoError(t, err)
	assert.Equal(t, string(want), op.String())
}

func TestParseQubitOperator(t *testing.T) {
	t.Run("comments and blank lines", func(t *testing.T) {
		in := "# H2\n\n(0.5+0j) [Z0] +\n  -0.25j [X0 Y1]\n"
		op, err := ParseQubitOperator(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, "-0.25j [X0 Y1] +\n(0.5+0j) [Z0]", op.String())
	})

	t.Run("empty operator", func(t *testing.T) {
		op, err := ParseQubitOperator(strings.NewReader("0"))
		require.NoError(t, err)
		assert.Zero(t, op.Len())
	})

	t.Run("factors multiplied in order", func(t *testing.T) {
		op, err := ParseQubitOperator(strings.NewReader(
			"(0.5+0j) [X0 X0] +\n(1+0j) [X1 Y1]"))
		require.NoError(t, err)
		assert.Equal(t, complex(0.5, 0), op.Coefficient(nil))
		assert.Equal(t, 1i, op.Coefficient(PauliString{{1, PauliZ}}))
	})

	t.Run("unsorted factors", func(t *testing.T) {
		op, err := ParseQubitOperator(strings.NewReader("(1+0j) [Z3 X0]"))
		require.NoError(t, err)
		assert.Equal(t, "(1+0j) [X0 Z3]", op.String())
	})

	for _, line := range []string{
		"(0.5+0j) X0",
		"(0.5+0j) [Q0]",
		"(0.5+0j) [X]",
		"(0.5+0j) [X-1]",
		"(abc) [X0]",
		"[X0]",
	} {
		t.Run("malformed "+line, func(t *testing.T) {
			_, err := ParseQubitOperator(strings.NewReader(line))
			assert.ErrorIs(t, err, ErrMalformedTerm)
		})
	}
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"(0.5+0j)", 0.5},
		{"(-0.09886396933553224+0j)", -0.09886396933553224},
		{"0.5j", 0.5i},
		{"-0.5j", -0.5i},
		{"(0.25-0.5j)", complex(0.25, -0.5)},
		{"(2.5e-06-1e-05j)", complex(2.5e-6, -1e-5)},
		{"(1e+16+0j)", 1e16},
		{"-3", -3},
	}
	for _, test := range tests {
		got, err := parseComplex(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	got, err := parseComplex("(nan+0j)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(real(got)))
}

func TestSmallTermRoundTrip(t *testing.T) {
	op := NewQubitOperator()
	op.Add(PauliString{{0, PauliX}}, complex(8e-9, 8e-9))
	require.Equal(t, 1, op.Len())
	assert.Equal(t, "(8e-09+8e-09j) [X0]", op.String())
	got, err := ParseQubitOperator(strings.NewReader(op.String()))
	require.NoError(t, err)
	assert.True(t, op.Equal(got, 0), "got %s", got)
}

func TestFormatRoundTrip(t *testing.T) {
	for _, c := range []complex128{
		0.17119774903433832,
		complex(-1.5e-7, 3),
		-0.04532220205287533i,
		1e16,
	} {
		got, err := parseComplex(formatComplex(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
