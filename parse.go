package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ReadHamiltonian parses the qubit operator written to filename
func ReadHamiltonian(filename string) (*QubitOperator, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	op, err := ParseQubitOperator(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return op, nil
}

// ParseQubitOperator reads the text form produced by
// QubitOperator.String. Blank lines and lines starting with # are
// skipped, and a lone "0" is the empty operator.
func ParseQubitOperator(r io.Reader) (*QubitOperator, error) {
	op := NewQubitOperator()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line == "0" {
			continue
		}
		line = strings.TrimSpace(strings.TrimSuffix(line, "+"))
		coeff, p, err := parseTerm(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		op.Add(p, coeff)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return op, nil
}

// parseTerm splits "coeff [P0 P1 ...]" and multiplies the factors in
// the order written, folding any phase into the coefficient
func parseTerm(line string) (complex128, PauliString, error) {
	open := strings.IndexByte(line, '[')
	if open < 0 || !strings.HasSuffix(line, "]") {
		return 0, nil, fmt.Errorf("%w: %q", ErrMalformedTerm, line)
	}
	coeff, err := parseComplex(strings.TrimSpace(line[:open]))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %q: %v", ErrMalformedTerm, line, err)
	}
	var p PauliString
	for _, field := range strings.Fields(line[open+1 : len(line)-1]) {
		op := Pauli(field[0])
		if !op.valid() || len(field) < 2 {
			return 0, nil, fmt.Errorf("%w: bad factor %q", ErrMalformedTerm,
				field)
		}
		u, err := strconv.ParseUint(field[1:], 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: bad qubit in %q", ErrMalformedTerm,
				field)
		}
		q, err := safecast.Conv[int](u)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrMalformedTerm, err)
		}
		phase, next := p.Mul(PauliString{{q, op}})
		coeff *= phase
		p = next
	}
	return coeff, p, nil
}

// parseComplex accepts the forms written by formatComplex: "(a+bj)",
// "(a-bj)", "bj" and plain real numbers, with or without parentheses
func parseComplex(s string) (complex128, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	if !strings.HasSuffix(s, "j") {
		re, err := strconv.ParseFloat(s, 64)
		return complex(re, 0), err
	}
	s = s[:len(s)-1]
	split := -1
	for i := len(s) - 1; i > 0; i-- {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != 'e' && s[i-1] != 'E' {
			split = i
			break
		}
	}
	var re float64
	ims := s
	if split > 0 {
		var err error
		re, err = strconv.ParseFloat(s[:split], 64)
		if err != nil {
			return 0, err
		}
		ims = s[split:]
	}
	im, err := strconv.ParseFloat(ims, 64)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}
