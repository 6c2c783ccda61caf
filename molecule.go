package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Default scientific parameters for the hydrogen molecule
const (
	defaultBondLength   = 0.7414
	defaultBasis        = "sto-3g"
	defaultMultiplicity = 1
	defaultCharge       = 0
	defaultDescription  = "H2_jw"
)

var fieldSep = regexp.MustCompile(`\s+`)

// Atom is an element symbol and its Cartesian position in Angstrom
type Atom struct {
	Symbol string
	Coords [3]float64
}

// Molecule describes the system handed to a Solver. It is built once
// and never modified afterwards.
type Molecule struct {
	Atoms        []Atom
	Basis        string
	Multiplicity int
	Charge       int
	Description  string
}

// DefaultMolecule returns H2 at its equilibrium bond length in a
// minimal basis, singlet and neutral.
func DefaultMolecule() Molecule {
	return Molecule{
		Atoms: []Atom{
			{"H", [3]float64{0, 0, 0}},
			{"H", [3]float64{0, 0, defaultBondLength}},
		},
		Basis:        defaultBasis,
		Multiplicity: defaultMultiplicity,
		Charge:       defaultCharge,
		Description:  defaultDescription,
	}
}

// Names returns the element symbols in input order
func (m Molecule) Names() []string {
	names := make([]string, len(m.Atoms))
	for i, a := range m.Atoms {
		names[i] = a.Symbol
	}
	return names
}

// Coords returns the flattened coordinate vector, three entries per
// atom
func (m Molecule) Coords() []float64 {
	coords := make([]float64, 0, 3*len(m.Atoms))
	for _, a := range m.Atoms {
		coords = append(coords, a.Coords[:]...)
	}
	return coords
}

func (m Molecule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s basis=%s multiplicity=%d charge=%d",
		m.Description, m.Basis, m.Multiplicity, m.Charge)
	for _, a := range m.Atoms {
		fmt.Fprintf(&b, " %s(%g,%g,%g)", a.Symbol,
			a.Coords[0], a.Coords[1], a.Coords[2])
	}
	return b.String()
}

// ReadFile returns the lines of filename with surrounding whitespace
// trimmed from the whole file
func ReadFile(filename string) ([]string, error) {
	lines, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSpace(string(lines)), "\n"), nil
}

// SplitLine splits line on runs of whitespace
func SplitLine(line string) []string {
	trim := strings.TrimSpace(line)
	if trim == "" {
		return nil
	}
	return fieldSep.Split(trim, -1)
}

// ParseGeometry reads atoms from lines of the form "Symbol x y z".
// A leading atom count and the comment line after it, as in an XYZ
// file, are skipped. Every other non-blank line must be an atom.
func ParseGeometry(lines []string) ([]Atom, error) {
	atoms := make([]Atom, 0)
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start < len(lines) {
		s := SplitLine(lines[start])
		if _, err := strconv.Atoi(s[0]); len(s) == 1 && err == nil {
			start += 2
		}
	}
	for i := start; i < len(lines); i++ {
		line := lines[i]
		s := SplitLine(line)
		if len(s) == 0 {
			continue
		}
		if len(s) != 4 {
			return nil, fmt.Errorf("%w: %q", ErrBadGeometry, line)
		}
		var atom Atom
		atom.Symbol = s[0]
		for k, c := range s[1:4] {
			f, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadGeometry, line)
			}
			atom.Coords[k] = f
		}
		atoms = append(atoms, atom)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("%w: no atoms", ErrBadGeometry)
	}
	return atoms, nil
}
