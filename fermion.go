package main

import (
	"math"
	"strconv"
	"strings"
)

// LadderOp is a fermionic creation (Raise) or annihilation operator on
// a spin-orbital mode
type LadderOp struct {
	Mode  int
	Raise bool
}

func (l LadderOp) String() string {
	if l.Raise {
		return strconv.Itoa(l.Mode) + "^"
	}
	return strconv.Itoa(l.Mode)
}

// FermionTerm is an ordered product of ladder operators with its
// coefficient
type FermionTerm struct {
	Ops   []LadderOp
	Coeff complex128
}

func (t FermionTerm) key() string {
	s := make([]string, len(t.Ops))
	for i, op := range t.Ops {
		s[i] = op.String()
	}
	return strings.Join(s, " ")
}

// FermionOperator is a weighted sum of ladder operator products. Terms
// are kept in insertion order so sums over them are reproducible.
type FermionOperator struct {
	index map[string]int
	terms []FermionTerm
}

func NewFermionOperator() *FermionOperator {
	return &FermionOperator{index: make(map[string]int)}
}

// Add adds coeff to the coefficient of the product ops
func (f *FermionOperator) Add(ops []LadderOp, coeff complex128) {
	t := FermionTerm{Ops: ops, Coeff: coeff}
	k := t.key()
	if i, ok := f.index[k]; ok {
		f.terms[i].Coeff += coeff
		return
	}
	f.index[k] = len(f.terms)
	f.terms = append(f.terms, t)
}

// Terms returns the terms in insertion order
func (f *FermionOperator) Terms() []FermionTerm {
	return f.terms
}

func (f *FermionOperator) Len() int {
	return len(f.terms)
}

func (f *FermionOperator) String() string {
	if len(f.terms) == 0 {
		return "0"
	}
	lines := make([]string, len(f.terms))
	for i, t := range f.terms {
		lines[i] = formatComplex(t.Coeff) + " [" + t.key() + "]"
	}
	return strings.Join(lines, " +\n")
}

// InteractionOperator is a number-conserving Hamiltonian
//
//	H = Constant + sum_pq OneBody[p][q] a†_p a_q
//	  + sum_pqrs TwoBody[p][q][r][s] a†_p a†_q a_r a_s
//
// over spin-orbital modes
type InteractionOperator struct {
	Constant float64
	OneBody  [][]float64
	TwoBody  [][][][]float64
}

// NModes is the number of spin orbitals
func (io InteractionOperator) NModes() int {
	return len(io.OneBody)
}

// MolecularHamiltonian expands the spatial molecular orbital integrals
// of s into spin orbitals, with mode 2i the alpha and 2i+1 the beta
// spin orbital of spatial orbital i. Entries below EqTolerance are
// zeroed.
func MolecularHamiltonian(s *SolvedMolecule) InteractionOperator {
	h, tb := s.OneBodyIntegrals, s.TwoBodyIntegrals
	n := len(h)
	m := 2 * n
	one := make([][]float64, m)
	for i := range one {
		one[i] = make([]float64, m)
	}
	two := newTensor4(m)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			one[2*p][2*q] = h[p][q]
			one[2*p+1][2*q+1] = h[p][q]
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					v := tb[p][q][r][s] / 2
					// mixed spin
					two[2*p][2*q+1][2*r+1][2*s] = v
					two[2*p+1][2*q][2*r][2*s+1] = v
					// same spin
					two[2*p][2*q][2*r][2*s] = v
					two[2*p+1][2*q+1][2*r+1][2*s+1] = v
				}
			}
		}
	}
	for p := 0; p < m; p++ {
		for q := 0; q < m; q++ {
			if math.Abs(one[p][q]) < EqTolerance {
				one[p][q] = 0
			}
			for r := 0; r < m; r++ {
				for s := 0; s < m; s++ {
					if math.Abs(two[p][q][r][s]) < EqTolerance {
						two[p][q][r][s] = 0
					}
				}
			}
		}
	}
	return InteractionOperator{
		Constant: s.NuclearRepulsion,
		OneBody:  one,
		TwoBody:  two,
	}
}

// GetFermionOperator writes io as a FermionOperator, skipping zero
// coefficients
func GetFermionOperator(io InteractionOperator) *FermionOperator {
	f := NewFermionOperator()
	if io.Constant != 0 {
		f.Add(nil, complex(io.Constant, 0))
	}
	m := io.NModes()
	for p := 0; p < m; p++ {
		for q := 0; q < m; q++ {
			if v := io.OneBody[p][q]; v != 0 {
				f.Add([]LadderOp{{p, true}, {q, false}}, complex(v, 0))
			}
		}
	}
	for p := 0; p < m; p++ {
		for q := 0; q < m; q++ {
			for r := 0; r < m; r++ {
				for s := 0; s < m; s++ {
					if v := io.TwoBody[p][q][r][s]; v != 0 {
						f.Add([]LadderOp{
							{p, true}, {q, true}, {r, false}, {s, false},
						}, complex(v, 0))
					}
				}
			}
		}
	}
	return f
}
