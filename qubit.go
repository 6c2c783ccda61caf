package main

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strconv"
	"strings"
)

// EqTolerance is the magnitude below which coefficients are treated as
// zero
const EqTolerance = 1e-8

// Pauli is one of the single-qubit Pauli operators
type Pauli byte

const (
	PauliX Pauli = 'X'
	PauliY Pauli = 'Y'
	PauliZ Pauli = 'Z'
)

// index gives X, Y, Z the positions 0, 1, 2 of the cyclic product
// rule XY = iZ
func (p Pauli) index() int {
	return int(p - PauliX)
}

func (p Pauli) valid() bool {
	return p == PauliX || p == PauliY || p == PauliZ
}

// mulPauli returns the phase and product of a and b acting on the same
// qubit. A zero Pauli is the identity.
func mulPauli(a, b Pauli) (complex128, Pauli) {
	if a == b {
		return 1, 0
	}
	third := Pauli(3-a.index()-b.index()) + PauliX
	if (b.index()-a.index()+3)%3 == 1 {
		return 1i, third
	}
	return -1i, third
}

// PauliFactor is a Pauli operator on a single qubit
type PauliFactor struct {
	Qubit int
	Op    Pauli
}

// PauliString is a tensor product of Pauli factors sorted by qubit with
// at most one factor per qubit. The empty string is the identity.
type PauliString []PauliFactor

func (p PauliString) String() string {
	s := make([]string, len(p))
	for i, f := range p {
		s[i] = string(f.Op) + strconv.Itoa(f.Qubit)
	}
	return strings.Join(s, " ")
}

// Compare orders Pauli strings factor by factor on (qubit, letter),
// with a string sorting before any longer string it prefixes
func (p PauliString) Compare(q PauliString) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		if c := cmp.Compare(p[i].Qubit, q[i].Qubit); c != 0 {
			return c
		}
		if c := cmp.Compare(p[i].Op, q[i].Op); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(p), len(q))
}

// Mul returns the phase and Pauli string of the product pq
func (p PauliString) Mul(q PauliString) (complex128, PauliString) {
	phase := complex(1, 0)
	out := make(PauliString, 0, len(p)+len(q))
	i, j := 0, 0
	for i < len(p) && j < len(q) {
		switch {
		case p[i].Qubit < q[j].Qubit:
			out = append(out, p[i])
			i++
		case p[i].Qubit > q[j].Qubit:
			out = append(out, q[j])
			j++
		default:
			ph, op := mulPauli(p[i].Op, q[j].Op)
			phase *= ph
			if op != 0 {
				out = append(out, PauliFactor{p[i].Qubit, op})
			}
			i++
			j++
		}
	}
	out = append(out, p[i:]...)
	out = append(out, q[j:]...)
	return phase, out
}

// QubitTerm is a Pauli string with its coefficient
type QubitTerm struct {
	Pauli PauliString
	Coeff complex128
}

// QubitOperator is a weighted sum of Pauli strings
type QubitOperator struct {
	terms map[string]QubitTerm
}

func NewQubitOperator() *QubitOperator {
	return &QubitOperator{terms: make(map[string]QubitTerm)}
}

// Add adds coeff to the coefficient of p, removing the term if the sum
// falls below EqTolerance
func (op *QubitOperator) Add(p PauliString, coeff complex128) {
	op.add(p, coeff, true)
}

func (op *QubitOperator) add(p PauliString, coeff complex128, prune bool) {
	key := p.String()
	t, ok := op.terms[key]
	if !ok {
		t = QubitTerm{Pauli: slices.Clone(p)}
	}
	t.Coeff += coeff
	if prune && cmplx.Abs(t.Coeff) < EqTolerance {
		delete(op.terms, key)
		return
	}
	op.terms[key] = t
}

// AddOperator adds every term of other to op
func (op *QubitOperator) AddOperator(other *QubitOperator) {
	for _, t := range other.Terms() {
		op.Add(t.Pauli, t.Coeff)
	}
}

// Mul returns the product op * other. Small coefficients are kept.
func (op *QubitOperator) Mul(other *QubitOperator) *QubitOperator {
	out := NewQubitOperator()
	for _, a := range op.Terms() {
		for _, b := range other.Terms() {
			phase, p := a.Pauli.Mul(b.Pauli)
			out.add(p, phase*a.Coeff*b.Coeff, false)
		}
	}
	return out
}

// Coefficient returns the coefficient of p, zero when p is absent
func (op *QubitOperator) Coefficient(p PauliString) complex128 {
	return op.terms[p.String()].Coeff
}

// Len is the number of terms
func (op *QubitOperator) Len() int {
	return len(op.terms)
}

// Terms returns the terms in rendering order
func (op *QubitOperator) Terms() []QubitTerm {
	ret := make([]QubitTerm, 0, len(op.terms))
	for _, t := range op.terms {
		ret = append(ret, t)
	}
	slices.SortFunc(ret, func(a, b QubitTerm) int {
		return a.Pauli.Compare(b.Pauli)
	})
	return ret
}

// NQubits is one more than the highest qubit index acted on
func (op *QubitOperator) NQubits() int {
	n := 0
	for _, t := range op.terms {
		for _, f := range t.Pauli {
			n = max(n, f.Qubit+1)
		}
	}
	return n
}

// Equal reports whether op and other have the same terms with
// coefficients within tol
func (op *QubitOperator) Equal(other *QubitOperator, tol float64) bool {
	for k, t := range op.terms {
		if cmplx.Abs(t.Coeff-other.terms[k].Coeff) > tol {
			return false
		}
	}
	for k, t := range other.terms {
		if _, ok := op.terms[k]; !ok && cmplx.Abs(t.Coeff) > tol {
			return false
		}
	}
	return true
}

// String renders one "(coefficient) [Pauli string]" term per line,
// joined by " +". The empty operator renders as "0".
func (op *QubitOperator) String() string {
	if len(op.terms) == 0 {
		return "0"
	}
	terms := op.Terms()
	lines := make([]string, len(terms))
	for i, t := range terms {
		lines[i] = fmt.Sprintf("%s [%s]", formatComplex(t.Coeff), t.Pauli)
	}
	return strings.Join(lines, " +\n")
}

// formatFloat writes x in shortest round-trip form, switching to
// exponent notation below 1e-4 and from 1e16
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		if math.Signbit(x) {
			return "-0"
		}
		return "0"
	}
	e := strconv.FormatFloat(x, 'e', -1, 64)
	_, exp, _ := strings.Cut(e, "e")
	n, _ := strconv.Atoi(exp)
	if n < -4 || n >= 16 {
		return e
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// formatComplex renders c as "(re+imj)", or "imj" when the real part
// is zero. A part smaller than EqTolerance is written as zero when the
// other part is not, and both are zero when |c| is below EqTolerance.
func formatComplex(c complex128) string {
	re, im := real(c), imag(c)
	small := func(x float64) bool { return math.Abs(x) < EqTolerance }
	switch {
	case cmplx.Abs(c) < EqTolerance:
		re, im = 0, 0
	case small(re) && !small(im):
		re = 0
	case small(im) && !small(re):
		im = 0
	}
	ims := formatFloat(im)
	if re == 0 {
		return ims + "j"
	}
	if !strings.HasPrefix(ims, "-") {
		ims = "+" + ims
	}
	return "(" + formatFloat(re) + ims + "j)"
}
