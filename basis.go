package main

import (
	"fmt"
	"math"
	"strings"
)

// bohr is the Angstrom length of one bohr
const bohr = 0.52917721092

// Shell is a contracted s-type Gaussian given by its exponents and
// contraction coefficients
type Shell struct {
	Exps   []float64
	Coeffs []float64
}

// Primitive is a single normalized s-type Gaussian centered at Center,
// weighted by its contraction coefficient
type Primitive struct {
	Alpha  float64
	Coeff  float64
	Center [3]float64
}

// BasisFunction is a contracted Gaussian placed on an atom
type BasisFunction struct {
	Atom  int
	Prims []Primitive
}

// sto3gCoeffs are shared by every 1s shell in STO-3G
var sto3gCoeffs = []float64{0.15432897, 0.53532814, 0.44463454}

// basisSets maps basis name to element symbol to shells
var basisSets = map[string]map[string][]Shell{
	"sto-3g": {
		"H": {
			{[]float64{3.42525091, 0.62391373, 0.16885540}, sto3gCoeffs},
		},
		"He": {
			{[]float64{6.36242139, 1.15892300, 0.31364979}, sto3gCoeffs},
		},
	},
	"6-31g": {
		"H": {
			{
				[]float64{18.7311370, 2.8253937, 0.6401217},
				[]float64{0.03349460, 0.23472695, 0.81375733},
			},
			{[]float64{0.1612778}, []float64{1.0}},
		},
	},
}

// nuclearCharges for the elements with basis functions above
var nuclearCharges = map[string]int{
	"H":  1,
	"He": 2,
}

// normalizedSymbol returns symbol with a leading capital and the rest
// lower case, so "he", "HE" and "He" all match
func normalizedSymbol(symbol string) string {
	if symbol == "" {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// BuildBasis places the shells of mol.Basis on each atom, with centers
// converted to bohr. Contractions are renormalized so each basis
// function has unit self-overlap.
func BuildBasis(mol Molecule) ([]BasisFunction, error) {
	set, ok := basisSets[strings.ToLower(mol.Basis)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBasis, mol.Basis)
	}
	funcs := make([]BasisFunction, 0)
	for i, atom := range mol.Atoms {
		shells, ok := set[normalizedSymbol(atom.Symbol)]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s",
				ErrUnknownElement, atom.Symbol, mol.Basis)
		}
		var center [3]float64
		for k := range center {
			center[k] = atom.Coords[k] / bohr
		}
		for _, shell := range shells {
			bf := BasisFunction{Atom: i}
			for j, a := range shell.Exps {
				bf.Prims = append(bf.Prims, Primitive{
					Alpha:  a,
					Coeff:  shell.Coeffs[j] * primNorm(a),
					Center: center,
				})
			}
			norm := 1 / math.Sqrt(overlap(bf, bf))
			for j := range bf.Prims {
				bf.Prims[j].Coeff *= norm
			}
			funcs = append(funcs, bf)
		}
	}
	return funcs, nil
}

// primNorm is the normalization constant of an s Gaussian with
// exponent alpha
func primNorm(alpha float64) float64 {
	return math.Pow(2*alpha/math.Pi, 0.75)
}

// nuclei returns the charges and bohr positions of the atoms in mol
func nuclei(mol Molecule) ([]float64, [][3]float64, error) {
	charges := make([]float64, len(mol.Atoms))
	centers := make([][3]float64, len(mol.Atoms))
	for i, atom := range mol.Atoms {
		z, ok := nuclearCharges[normalizedSymbol(atom.Symbol)]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownElement,
				atom.Symbol)
		}
		charges[i] = float64(z)
		for k := range centers[i] {
			centers[i][k] = atom.Coords[k] / bohr
		}
	}
	return charges, centers, nil
}
