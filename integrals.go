package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

// boys is the Boys function F_n(x)
func boys(n int, x float64) float64 {
	nf := float64(n)
	if x < 1e-12 {
		return 1 / (2*nf + 1)
	}
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) /
		(2 * math.Pow(x, nf+0.5))
}

func dist2(a, b [3]float64) float64 {
	d := make([]float64, 3)
	floats.SubTo(d, a[:], b[:])
	return floats.Dot(d, d)
}

// gaussianProduct returns the exponent sum p, the reduced exponent mu
// and the center P of the product of two Gaussians
func gaussianProduct(a, b Primitive) (p, mu float64, center [3]float64) {
	p = a.Alpha + b.Alpha
	mu = a.Alpha * b.Alpha / p
	for k := range center {
		center[k] = (a.Alpha*a.Center[k] + b.Alpha*b.Center[k]) / p
	}
	return
}

func overlap(f, g BasisFunction) (s float64) {
	for _, a := range f.Prims {
		for _, b := range g.Prims {
			p, mu, _ := gaussianProduct(a, b)
			r2 := dist2(a.Center, b.Center)
			s += a.Coeff * b.Coeff * math.Pow(math.Pi/p, 1.5) *
				math.Exp(-mu*r2)
		}
	}
	return
}

func kinetic(f, g BasisFunction) (t float64) {
	for _, a := range f.Prims {
		for _, b := range g.Prims {
			p, mu, _ := gaussianProduct(a, b)
			r2 := dist2(a.Center, b.Center)
			t += a.Coeff * b.Coeff * mu * (3 - 2*mu*r2) *
				math.Pow(math.Pi/p, 1.5) * math.Exp(-mu*r2)
		}
	}
	return
}

func nuclearAttraction(f, g BasisFunction, charges []float64,
	centers [][3]float64) (v float64) {
	for _, a := range f.Prims {
		for _, b := range g.Prims {
			p, mu, pc := gaussianProduct(a, b)
			pre := a.Coeff * b.Coeff * 2 * math.Pi / p *
				math.Exp(-mu*dist2(a.Center, b.Center))
			for n, z := range charges {
				v -= z * pre * boys(0, p*dist2(pc, centers[n]))
			}
		}
	}
	return
}

// repulsion is the two-electron integral (fg|hk) in chemists' notation
func repulsion(f, g, h, k BasisFunction) (eri float64) {
	for _, a := range f.Prims {
		for _, b := range g.Prims {
			p, mu, pc := gaussianProduct(a, b)
			eab := math.Exp(-mu * dist2(a.Center, b.Center))
			for _, c := range h.Prims {
				for _, d := range k.Prims {
					q, nu, qc := gaussianProduct(c, d)
					ecd := math.Exp(-nu * dist2(c.Center, d.Center))
					pre := 2 * math.Pow(math.Pi, 2.5) /
						(p * q * math.Sqrt(p+q))
					eri += a.Coeff * b.Coeff * c.Coeff * d.Coeff *
						pre * eab * ecd *
						boys(0, p*q/(p+q)*dist2(pc, qc))
				}
			}
		}
	}
	return
}

// AOIntegrals holds the atomic-orbital integrals of a molecule
type AOIntegrals struct {
	S    *mat.SymDense
	T    *mat.SymDense
	V    *mat.SymDense
	ERI  [][][][]float64
	Enuc float64
}

// Hcore returns the core Hamiltonian T + V
func (ao *AOIntegrals) Hcore() *mat.SymDense {
	n := ao.S.SymmetricDim()
	h := mat.NewSymDense(n, nil)
	h.AddSym(ao.T, ao.V)
	return h
}

// ComputeIntegrals evaluates every one- and two-electron integral over
// basis. The eightfold permutational symmetry of the repulsion
// integrals is used to fill the tensor.
func ComputeIntegrals(basis []BasisFunction, charges []float64,
	centers [][3]float64) *AOIntegrals {
	n := len(basis)
	ao := &AOIntegrals{
		S:   mat.NewSymDense(n, nil),
		T:   mat.NewSymDense(n, nil),
		V:   mat.NewSymDense(n, nil),
		ERI: newTensor4(n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			ao.S.SetSym(i, j, overlap(basis[i], basis[j]))
			ao.T.SetSym(i, j, kinetic(basis[i], basis[j]))
			ao.V.SetSym(i, j, nuclearAttraction(basis[i], basis[j],
				charges, centers))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			ij := i*(i+1)/2 + j
			for k := 0; k < n; k++ {
				for l := 0; l <= k; l++ {
					kl := k*(k+1)/2 + l
					if kl > ij {
						continue
					}
					v := repulsion(basis[i], basis[j], basis[k], basis[l])
					for _, idx := range [][4]int{
						{i, j, k, l}, {j, i, k, l}, {i, j, l, k}, {j, i, l, k},
						{k, l, i, j}, {l, k, i, j}, {k, l, j, i}, {l, k, j, i},
					} {
						ao.ERI[idx[0]][idx[1]][idx[2]][idx[3]] = v
					}
				}
			}
		}
	}
	ao.Enuc = nuclearRepulsion(charges, centers)
	return ao
}

func nuclearRepulsion(charges []float64, centers [][3]float64) (e float64) {
	for i := range charges {
		for j := 0; j < i; j++ {
			e += charges[i] * charges[j] /
				math.Sqrt(dist2(centers[i], centers[j]))
		}
	}
	return
}

func newTensor4(n int) [][][][]float64 {
	t := make([][][][]float64, n)
	for i := range t {
		t[i] = make([][][]float64, n)
		for j := range t[i] {
			t[i][j] = make([][]float64, n)
			for k := range t[i][j] {
				t[i][j][k] = make([]float64, n)
			}
		}
	}
	return t
}
