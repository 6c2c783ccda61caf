package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Key is a custom type used as the keys in the Input map
type Key int

// Keys for Input map
const (
	GeomKey Key = iota
	BasisKey
	ChargeKey
	MultKey
	DescKey
	NumKeys
)

func (k Key) String() string {
	return [...]string{
		"GeomKey",
		"BasisKey",
		"ChargeKey",
		"MultKey",
		"DescKey",
	}[k]
}

// Regexp consists of an embedded *regexp.Regexp and an associated Key
type Regexp struct {
	*regexp.Regexp
	Name Key
}

var (
	keywords = []Regexp{
		{regexp.MustCompile(`(?i)^\s*basis\s*=`), BasisKey},
		{regexp.MustCompile(`(?i)^\s*charge\s*=`), ChargeKey},
		{regexp.MustCompile(`(?i)^\s*multiplicity\s*=`), MultKey},
		{regexp.MustCompile(`(?i)^\s*description\s*=`), DescKey},
	}
	geomStart = regexp.MustCompile(`(?i)^\s*geometry\s*=\s*{`)
)

// ParseKeywords parses the lines of an infile and loads matching
// keywords into the returned map. The geometry block is stored
// verbatim, one atom per line.
func ParseKeywords(lines []string) (map[Key]string, error) {
	keymap := map[Key]string{}
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) < 1 || line[0] == '#' {
			continue
		}
		if geomStart.MatchString(line) {
			geomlines := make([]string, 0)
			i++
			for ; i < len(lines) && !strings.Contains(lines[i], "}"); i++ {
				geomlines = append(geomlines, strings.TrimSpace(lines[i]))
			}
			if i == len(lines) {
				return nil, fmt.Errorf("%w: unterminated geometry block",
					ErrBadKeyword)
			}
			keymap[GeomKey] = strings.Join(geomlines, "\n")
			continue
		}
		for _, kword := range keywords {
			if kword.MatchString(line) {
				_, val, _ := strings.Cut(line, "=")
				keymap[kword.Name] = strings.TrimSpace(val)
			}
		}
	}
	return keymap, nil
}

// ParseInfile reads a molecule from filename. Keywords missing from
// the file keep the values of DefaultMolecule. Files ending in .yaml or
// .yml are handed to ParseYAML.
func ParseInfile(filename string) (Molecule, error) {
	if isYAML(filename) {
		return ParseYAML(filename)
	}
	mol := DefaultMolecule()
	lines, err := ReadFile(filename)
	if err != nil {
		return mol, err
	}
	keymap, err := ParseKeywords(lines)
	if err != nil {
		return mol, fmt.Errorf("%s: %w", filename, err)
	}
	if geom, ok := keymap[GeomKey]; ok {
		atoms, err := ParseGeometry(strings.Split(geom, "\n"))
		if err != nil {
			return mol, fmt.Errorf("%s: %w", filename, err)
		}
		mol.Atoms = atoms
	}
	if basis, ok := keymap[BasisKey]; ok {
		mol.Basis = strings.ToLower(basis)
	}
	if desc, ok := keymap[DescKey]; ok {
		mol.Description = desc
	}
	for _, k := range []Key{ChargeKey, MultKey} {
		v, ok := keymap[k]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return mol, fmt.Errorf("%s: %w: %v=%q", filename,
				ErrBadKeyword, k, v)
		}
		switch k {
		case ChargeKey:
			mol.Charge = n
		case MultKey:
			mol.Multiplicity = n
		}
	}
	return mol, nil
}
