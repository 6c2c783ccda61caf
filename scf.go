package main

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultSCFTol     = 1e-10
	defaultSCFMaxIter = 100

	// overlap eigenvalues below this mean linearly dependent functions
	minOverlapEigen = 1e-10
)

// HartreeFock is a restricted closed-shell Hartree-Fock Solver
type HartreeFock struct {
	Tol     float64
	MaxIter int
	Log     zerolog.Logger
}

// NewHartreeFock returns a HartreeFock with the default convergence
// settings
func NewHartreeFock(log zerolog.Logger) *HartreeFock {
	return &HartreeFock{
		Tol:     defaultSCFTol,
		MaxIter: defaultSCFMaxIter,
		Log:     log,
	}
}

// Solve runs the SCF for mol and transforms the integrals to the
// converged molecular orbitals
func (hf *HartreeFock) Solve(mol Molecule, runSCF bool) (*SolvedMolecule, error) {
	if !runSCF {
		return nil, ErrSCFNotRequested
	}
	basis, err := BuildBasis(mol)
	if err != nil {
		return nil, err
	}
	charges, centers, err := nuclei(mol)
	if err != nil {
		return nil, err
	}
	nelec := -mol.Charge
	for _, z := range charges {
		nelec += int(z)
	}
	switch {
	case nelec <= 0:
		return nil, fmt.Errorf("%w: charge %d", ErrNoElectrons, mol.Charge)
	case mol.Multiplicity != 1 || nelec%2 != 0:
		return nil, fmt.Errorf("%w: %d electrons, multiplicity %d",
			ErrOpenShell, nelec, mol.Multiplicity)
	case nelec/2 > len(basis):
		return nil, fmt.Errorf("%w: %d electrons in %d orbitals",
			ErrTooManyElectrons, nelec, len(basis))
	}
	hf.Log.Debug().
		Str("basis", mol.Basis).
		Int("functions", len(basis)).
		Int("electrons", nelec).
		Msg("computing atomic orbital integrals")
	ao := ComputeIntegrals(basis, charges, centers)

	x, err := orthogonalizer(ao.S)
	if err != nil {
		return nil, err
	}
	nocc := nelec / 2
	h := ao.Hcore()
	n := len(basis)
	density := mat.NewSymDense(n, nil)
	var (
		eps    []float64
		coeffs *mat.Dense
		energy float64
		prev   float64
		iter   int
		conv   bool
	)
	for iter = 1; iter <= hf.MaxIter; iter++ {
		fock := fockMatrix(h, ao.ERI, density)
		prev, energy = energy, electronicEnergy(density, h, fock)
		eps, coeffs, err = diagonalize(fock, x)
		if err != nil {
			return nil, err
		}
		next := densityMatrix(coeffs, nocc)
		delta := rmsDiff(next, density)
		density = next
		hf.Log.Debug().
			Int("iter", iter).
			Float64("energy", energy+ao.Enuc).
			Float64("drms", delta).
			Msg("scf")
		if iter > 1 && math.Abs(energy-prev) < hf.Tol &&
			delta < math.Sqrt(hf.Tol) {
			conv = true
			break
		}
	}
	if !conv {
		return nil, fmt.Errorf("%w after %d iterations",
			ErrSCFNotConverged, hf.MaxIter)
	}
	energy = electronicEnergy(density, h, fockMatrix(h, ao.ERI, density))
	fixPhases(coeffs)
	hf.Log.Debug().
		Int("iterations", iter).
		Float64("energy", energy+ao.Enuc).
		Msg("scf converged")
	return &SolvedMolecule{
		Molecule:         mol,
		NuclearRepulsion: ao.Enuc,
		HFEnergy:         energy + ao.Enuc,
		OrbitalEnergies:  eps,
		Coefficients:     coeffs,
		OneBodyIntegrals: oneBodyMO(h, coeffs),
		TwoBodyIntegrals: twoBodyMO(ao.ERI, coeffs),
		NElectrons:       nelec,
		NOrbitals:        n,
		Iterations:       iter,
	}, nil
}

// orthogonalizer returns the symmetric orthogonalization matrix S^-1/2
func orthogonalizer(s *mat.SymDense) (*mat.Dense, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(s, true); !ok {
		return nil, fmt.Errorf("%w: overlap", ErrEigenFailed)
	}
	vals := eig.Values(nil)
	for _, v := range vals {
		if v < minOverlapEigen {
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrSingularOverlap, v)
		}
	}
	var u mat.Dense
	eig.VectorsTo(&u)
	inv := make([]float64, len(vals))
	for i, v := range vals {
		inv[i] = 1 / math.Sqrt(v)
	}
	var x mat.Dense
	x.Mul(&u, mat.NewDiagDense(len(inv), inv))
	x.Mul(&x, u.T())
	return &x, nil
}

// fockMatrix builds F = H + G(P) with the closed-shell two-electron
// term G_ij = sum_kl P_kl [(ij|kl) - 1/2 (il|kj)]
func fockMatrix(h *mat.SymDense, eri [][][][]float64,
	p *mat.SymDense) *mat.SymDense {
	n := h.SymmetricDim()
	f := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			g := 0.0
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					g += p.At(k, l) * (eri[i][j][k][l] - 0.5*eri[i][l][k][j])
				}
			}
			f.SetSym(i, j, h.At(i, j)+g)
		}
	}
	return f
}

// diagonalize solves FC = SCE in the orthogonal basis given by x and
// returns the orbital energies in ascending order with their
// coefficients as columns
func diagonalize(f *mat.SymDense, x *mat.Dense) ([]float64, *mat.Dense, error) {
	n := f.SymmetricDim()
	var tmp mat.Dense
	tmp.Mul(x.T(), f)
	tmp.Mul(&tmp, x)
	fp := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			fp.SetSym(i, j, 0.5*(tmp.At(i, j)+tmp.At(j, i)))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(fp, true); !ok {
		return nil, nil, fmt.Errorf("%w: Fock matrix", ErrEigenFailed)
	}
	var cp mat.Dense
	eig.VectorsTo(&cp)
	c := mat.NewDense(n, n, nil)
	c.Mul(x, &cp)
	return eig.Values(nil), c, nil
}

// densityMatrix is P_ij = 2 sum_a C_ia C_ja over the nocc lowest
// orbitals
func densityMatrix(c *mat.Dense, nocc int) *mat.SymDense {
	n, _ := c.Dims()
	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := 0.0
			for a := 0; a < nocc; a++ {
				sum += c.At(i, a) * c.At(j, a)
			}
			p.SetSym(i, j, 2*sum)
		}
	}
	return p
}

func electronicEnergy(p, h, f *mat.SymDense) (e float64) {
	n := p.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e += 0.5 * p.At(i, j) * (h.At(i, j) + f.At(i, j))
		}
	}
	return
}

func rmsDiff(a, b *mat.SymDense) float64 {
	n := a.SymmetricDim()
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := a.At(i, j) - b.At(i, j)
			sum += d * d
		}
	}
	return math.Sqrt(sum / float64(n*n))
}

// fixPhases flips each orbital so that its largest coefficient is
// positive. Ties go to the lowest index.
func fixPhases(c *mat.Dense) {
	n, m := c.Dims()
	for j := 0; j < m; j++ {
		big := 0.0
		for i := 0; i < n; i++ {
			big = math.Max(big, math.Abs(c.At(i, j)))
		}
		for i := 0; i < n; i++ {
			v := c.At(i, j)
			if math.Abs(v) < big-1e-8 {
				continue
			}
			if v < 0 {
				for k := 0; k < n; k++ {
					c.Set(k, j, -c.At(k, j))
				}
			}
			break
		}
	}
}

// oneBodyMO transforms h to the molecular orbital basis, C^T h C
func oneBodyMO(h *mat.SymDense, c *mat.Dense) [][]float64 {
	var mo mat.Dense
	mo.Mul(c.T(), h)
	mo.Mul(&mo, c)
	n, _ := mo.Dims()
	ret := make([][]float64, n)
	for i := range ret {
		ret[i] = make([]float64, n)
		for j := range ret[i] {
			ret[i][j] = mo.At(i, j)
		}
	}
	return ret
}

// slot addresses a tensor element with x in one fixed index position
// and a, b, d filling the others in order
type slot func(t [][][][]float64, x, a, b, d int) *float64

// twoBodyMO transforms the atomic orbital repulsion integrals to the
// molecular orbital basis one index at a time and reorders them so
// that entry [p][q][r][s] holds (ps|qr)
func twoBodyMO(eri [][][][]float64, c *mat.Dense) [][][][]float64 {
	n := len(eri)
	step := func(in [][][][]float64, idx slot) [][][][]float64 {
		out := newTensor4(n)
		for p := 0; p < n; p++ {
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					for d := 0; d < n; d++ {
						for mu := 0; mu < n; mu++ {
							*idx(out, p, a, b, d) += c.At(mu, p) *
								*idx(in, mu, a, b, d)
						}
					}
				}
			}
		}
		return out
	}
	t := step(eri, func(t [][][][]float64, x, a, b, d int) *float64 {
		return &t[x][a][b][d]
	})
	t = step(t, func(t [][][][]float64, x, a, b, d int) *float64 {
		return &t[a][x][b][d]
	})
	t = step(t, func(t [][][][]float64, x, a, b, d int) *float64 {
		return &t[a][b][x][d]
	})
	t = step(t, func(t [][][][]float64, x, a, b, d int) *float64 {
		return &t[a][b][d][x]
	})
	ret := newTensor4(n)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					ret[p][q][r][s] = t[p][s][q][r]
				}
			}
		}
	}
	return ret
}
