package main

import "errors"

// Input errors
var (
	ErrBadGeometry = errors.New("malformed geometry")
	ErrBadKeyword  = errors.New("malformed infile keyword")
)

// Solver errors
var (
	ErrUnknownBasis     = errors.New("unknown basis set")
	ErrUnknownElement   = errors.New("element not available in basis")
	ErrOpenShell        = errors.New("only closed-shell singlets are supported")
	ErrNoElectrons      = errors.New("molecule has no electrons")
	ErrTooManyElectrons = errors.New("more electrons than the basis can hold")
	ErrSingularOverlap  = errors.New("overlap matrix is singular")
	ErrSCFNotConverged  = errors.New("SCF did not converge")
	ErrSCFNotRequested  = errors.New("molecular orbital integrals require an SCF pass")
	ErrEigenFailed      = errors.New("eigendecomposition failed")
)

// Operator errors
var (
	ErrMalformedTerm = errors.New("malformed operator term")
	ErrTooManyQubits = errors.New("too many qubits for exact diagonalization")
	ErrBadSector     = errors.New("invalid particle-number sector")
)

// Molpro output errors
var (
	ErrFileNotFound        = errors.New("Molpro output file not found")
	ErrEnergyNotFound      = errors.New("Energy not found in Molpro output")
	ErrEnergyNotParsed     = errors.New("Energy not parsed in Molpro output")
	ErrFileContainsError   = errors.New("Molpro output file contains an error")
	ErrBlankOutput         = errors.New("Molpro output file exists but is blank")
	ErrFinishedButNoEnergy = errors.New("Molpro output finished but no energy found")
)
