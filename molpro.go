package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const molproTerminated = "Molpro calculation terminated"

var energyLine = regexp.MustCompile(`^\s*EHF\s*=`)

// Molpro writes Hartree-Fock input decks for an external Molpro run and
// reads the energy back from its output
type Molpro struct{}

func (m Molpro) MakeHead() []string {
	return []string{"memory,50,m",
		"gthresh,energy=1.d-10,zero=1.d-16,oneint=1.d-16,twoint=1.d-16;",
		"nocompress",
		"geomtyp=xyz",
		"angstrom",
		"geometry={"}
}

func (m Molpro) MakeFoot(mol Molecule) []string {
	return []string{"}",
		"basis=" + mol.Basis,
		"set,charge=" + strconv.Itoa(mol.Charge),
		"set,spin=" + strconv.Itoa(mol.Multiplicity-1),
		"{hf,maxit=500;accu,20;}",
		"ehf=energy",
		"show[1,f20.12],ehf"}
}

// MakeInput joins head, body and foot into one input file
func MakeInput(head, foot, body []string) []string {
	file := make([]string, 0, len(head)+len(body)+len(foot))
	file = append(file, head...)
	file = append(file, body...)
	file = append(file, foot...)
	return file
}

// MakeIn returns the lines of a Molpro input file for mol
func (m Molpro) MakeIn(mol Molecule) []string {
	body := make([]string, 0, len(mol.Atoms))
	for _, atom := range mol.Atoms {
		tmp := []string{atom.Symbol}
		for _, c := range atom.Coords {
			tmp = append(tmp, strconv.FormatFloat(c, 'f', 10, 64))
		}
		body = append(body, strings.Join(tmp, " "))
	}
	return MakeInput(m.MakeHead(), m.MakeFoot(mol), body)
}

// WriteIn uses MakeIn to write a Molpro input file to filename
func (m Molpro) WriteIn(filename string, mol Molecule) error {
	lines := m.MakeIn(mol)
	return os.WriteFile(filename, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// ReadOut reads a Molpro output file and returns the Hartree-Fock
// energy printed by the show command of MakeFoot
func (m Molpro) ReadOut(filename string) (result float64, err error) {
	result = math.NaN()
	if _, err = os.Stat(filename); os.IsNotExist(err) {
		return result, ErrFileNotFound
	}
	lines, err := ReadFile(filename)
	if err != nil {
		return result, err
	}
	// blank file has a single empty line
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return result, ErrBlankOutput
	}
	err = ErrEnergyNotFound
	for _, line := range lines {
		if strings.Contains(strings.ToUpper(line), "ERROR") {
			return math.NaN(), ErrFileContainsError
		}
		if energyLine.MatchString(line) {
			_, val, _ := strings.Cut(line, "=")
			split := SplitLine(val)
			if len(split) == 0 {
				err = ErrEnergyNotParsed
				continue
			}
			f, perr := strconv.ParseFloat(split[0], 64)
			if perr != nil {
				err = ErrEnergyNotParsed
				continue
			}
			result, err = f, nil
		}
		if strings.Contains(line, molproTerminated) &&
			errors.Is(err, ErrEnergyNotFound) {
			err = ErrFinishedButNoEnergy
		}
	}
	return result, err
}

// molproName is the input file name written for mol
func molproName(mol Molecule) string {
	return mol.Description + ".inp"
}

var molproCmd = &cobra.Command{
	Use:   "molpro [infile]",
	Short: "Write a Molpro Hartree-Fock input for the molecule",
	Long: `Write <description>.inp, a Molpro input running the same
Hartree-Fock calculation, so the SCF energy can be checked against an
external program with the check command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mol, err := loadMolecule(args)
		if err != nil {
			return err
		}
		filename := molproName(mol)
		if err := (Molpro{}).WriteIn(filename, mol); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Molpro input saved to %s\n", filename)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <molpro.out> [infile]",
	Short: "Compare the SCF energy with a Molpro output",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mol, err := loadMolecule(args[1:])
		if err != nil {
			return err
		}
		want, err := (Molpro{}).ReadOut(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		solved, err := NewHartreeFock(logger).Solve(mol, true)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "qham   %20.12f\n", solved.HFEnergy)
		fmt.Fprintf(out, "molpro %20.12f\n", want)
		fmt.Fprintf(out, "diff   %20.12f\n", solved.HFEnergy-want)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(molproCmd)
	rootCmd.AddCommand(checkCmd)
}
