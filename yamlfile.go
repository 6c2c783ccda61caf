package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlAtom is one entry of the atoms list in a YAML molecule file
type yamlAtom struct {
	Symbol string    `yaml:"symbol"`
	Coords []float64 `yaml:"coords"`
}

// yamlMolecule mirrors Molecule with optional fields, so that keys
// missing from the file keep their default values
type yamlMolecule struct {
	Atoms        []yamlAtom `yaml:"atoms"`
	Basis        *string    `yaml:"basis"`
	Multiplicity *int       `yaml:"multiplicity"`
	Charge       *int       `yaml:"charge"`
	Description  *string    `yaml:"description"`
}

// isYAML reports whether filename should be read by ParseYAML
func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ParseYAML reads a molecule from a YAML file of the form
//
//	description: H2_jw
//	basis: sto-3g
//	charge: 0
//	multiplicity: 1
//	atoms:
//	  - {symbol: H, coords: [0, 0, 0]}
//	  - {symbol: H, coords: [0, 0, 0.7414]}
//
// Missing keys keep the values of DefaultMolecule.
func ParseYAML(filename string) (Molecule, error) {
	mol := DefaultMolecule()
	data, err := os.ReadFile(filename)
	if err != nil {
		return mol, err
	}
	var in yamlMolecule
	if err := yaml.Unmarshal(data, &in); err != nil {
		return mol, fmt.Errorf("%s: %w: %v", filename, ErrBadKeyword, err)
	}
	if in.Atoms != nil {
		atoms := make([]Atom, len(in.Atoms))
		for i, a := range in.Atoms {
			if a.Symbol == "" || len(a.Coords) != 3 {
				return mol, fmt.Errorf("%s: %w: atom %d", filename,
					ErrBadGeometry, i+1)
			}
			atoms[i].Symbol = a.Symbol
			copy(atoms[i].Coords[:], a.Coords)
		}
		if len(atoms) == 0 {
			return mol, fmt.Errorf("%s: %w: no atoms", filename,
				ErrBadGeometry)
		}
		mol.Atoms = atoms
	}
	if in.Basis != nil {
		mol.Basis = strings.ToLower(*in.Basis)
	}
	if in.Multiplicity != nil {
		mol.Multiplicity = *in.Multiplicity
	}
	if in.Charge != nil {
		mol.Charge = *in.Charge
	}
	if in.Description != nil {
		mol.Description = *in.Description
	}
	return mol, nil
}
