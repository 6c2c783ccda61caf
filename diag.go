package main

import (
	"fmt"
	"math/bits"

	"fortio.org/safecast"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MaxDiagQubits bounds the register size accepted by
// GroundStateEnergy
const MaxDiagQubits = 12

// apply acts with p on the computational basis state b of an n-qubit
// register, qubit 0 being the most significant bit, and returns the
// resulting state and phase
func (p PauliString) apply(b uint, n uint) (uint, complex128) {
	phase := complex(1, 0)
	out := b
	for _, f := range p {
		mask := uint(1) << (n - 1 - uint(f.Qubit))
		set := b&mask != 0
		switch f.Op {
		case PauliX:
			out ^= mask
		case PauliY:
			out ^= mask
			if set {
				phase *= -1i
			} else {
				phase *= 1i
			}
		case PauliZ:
			if set {
				phase = -phase
			}
		}
	}
	return out, phase
}

// sectorStates lists the basis states of n qubits with nElectrons set
// bits, or every state when nElectrons is negative
func sectorStates(n uint, nElectrons int) []uint {
	states := make([]uint, 0)
	for b := uint(0); b < 1<<n; b++ {
		if nElectrons < 0 || bits.OnesCount(b) == nElectrons {
			states = append(states, b)
		}
	}
	return states
}

// HermitianMatrix returns the real and imaginary parts of op projected
// onto the given basis states of an n-qubit register
func (op *QubitOperator) HermitianMatrix(n uint, states []uint) (re, im *mat.Dense) {
	m := len(states)
	pos := make(map[uint]int, m)
	for i, b := range states {
		pos[b] = i
	}
	re = mat.NewDense(m, m, nil)
	im = mat.NewDense(m, m, nil)
	for _, t := range op.Terms() {
		for j, b := range states {
			out, phase := t.Pauli.apply(b, n)
			i, ok := pos[out]
			if !ok {
				continue
			}
			v := t.Coeff * phase
			re.Set(i, j, re.At(i, j)+real(v))
			im.Set(i, j, im.At(i, j)+imag(v))
		}
	}
	return re, im
}

// GroundStateEnergy returns the lowest eigenvalue of op by exact
// diagonalization. A non-negative nElectrons restricts the search to
// states with that many occupied modes under the Jordan-Wigner
// encoding. The Hermitian matrix A + iB is diagonalized through the
// real symmetric embedding [[A, -B], [B, A]], whose spectrum is that
// of A + iB with every eigenvalue doubled.
func GroundStateEnergy(op *QubitOperator, nElectrons int) (float64, error) {
	nq := op.NQubits()
	if nq > MaxDiagQubits {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, nq,
			MaxDiagQubits)
	}
	if nElectrons > nq {
		return 0, fmt.Errorf("%w: %d electrons on %d qubits", ErrBadSector,
			nElectrons, nq)
	}
	n, err := safecast.Conv[uint](nq)
	if err != nil {
		return 0, err
	}
	states := sectorStates(n, nElectrons)
	a, b := op.HermitianMatrix(n, states)
	m := len(states)
	at := func(i, j int) float64 {
		r, c := i%m, j%m
		switch {
		case i < m && j >= m:
			return -b.At(r, c)
		case i >= m && j < m:
			return b.At(r, c)
		default:
			return a.At(r, c)
		}
	}
	emb := mat.NewSymDense(2*m, nil)
	for i := 0; i < 2*m; i++ {
		for j := i; j < 2*m; j++ {
			emb.SetSym(i, j, 0.5*(at(i, j)+at(j, i)))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(emb, false); !ok {
		return 0, fmt.Errorf("%w: Hamiltonian matrix", ErrEigenFailed)
	}
	return floats.Min(eig.Values(nil)), nil
}
