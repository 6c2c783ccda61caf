package main

import "gonum.org/v1/gonum/mat"

// Solver is an interface for electronic structure backends that turn a
// Molecule into molecular-orbital integrals
type Solver interface {
	Solve(mol Molecule, runSCF bool) (*SolvedMolecule, error)
}

// SolvedMolecule is the result of a converged SCF calculation. The
// integrals are in the molecular orbital basis, with TwoBodyIntegrals
// ordered so that TwoBodyIntegrals[p][q][r][s] is (ps|qr) in chemists'
// notation.
type SolvedMolecule struct {
	Molecule         Molecule
	NuclearRepulsion float64
	HFEnergy         float64
	OrbitalEnergies  []float64
	Coefficients     *mat.Dense
	OneBodyIntegrals [][]float64
	TwoBodyIntegrals [][][][]float64
	NElectrons       int
	NOrbitals        int
	Iterations       int
}

// NQubits is the number of spin orbitals, one qubit each under the
// Jordan-Wigner encoding
func (s *SolvedMolecule) NQubits() int {
	return 2 * s.NOrbitals
}
