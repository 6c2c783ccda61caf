package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// OutputFile is written in the working directory on every run
const OutputFile = "hamiltonian.txt"

// Pipeline turns a Molecule into its Jordan-Wigner qubit Hamiltonian
type Pipeline struct {
	Solver Solver
	Log    zerolog.Logger
}

// NewPipeline returns a Pipeline using the Hartree-Fock solver
func NewPipeline(log zerolog.Logger) *Pipeline {
	return &Pipeline{
		Solver: NewHartreeFock(log),
		Log:    log,
	}
}

// Hamiltonian solves mol and returns its qubit Hamiltonian along with
// the solver result
func (p *Pipeline) Hamiltonian(mol Molecule) (*QubitOperator, *SolvedMolecule, error) {
	p.Log.Debug().Stringer("molecule", mol).Msg("solving")
	t := NewTimer("scf", p.Log)
	solved, err := p.Solver.Solve(mol, true)
	t.Stop()
	if err != nil {
		return nil, nil, fmt.Errorf("solving %s: %w", mol.Description, err)
	}
	p.Log.Debug().
		Float64("hf_energy", solved.HFEnergy).
		Int("electrons", solved.NElectrons).
		Int("spin_orbitals", solved.NQubits()).
		Msg("solved")

	t = NewTimer("hamiltonian", p.Log)
	fermion := GetFermionOperator(MolecularHamiltonian(solved))
	qubit := JordanWigner(fermion)
	t.Stop()
	p.Log.Debug().
		Int("fermion_terms", fermion.Len()).
		Int("qubit_terms", qubit.Len()).
		Int("qubits", qubit.NQubits()).
		Msg("transformed")
	return qubit, solved, nil
}

// Run computes the Hamiltonian of mol and writes it to filename,
// returning the absolute path written. Nothing is written if any
// stage before the output fails.
func (p *Pipeline) Run(mol Molecule, filename string) (string, error) {
	op, _, err := p.Hamiltonian(mol)
	if err != nil {
		return "", err
	}
	return WriteHamiltonian(filename, op)
}

// WriteHamiltonian creates or truncates filename, writes the text form
// of op and returns the absolute path of the file
func WriteHamiltonian(filename string, op *QubitOperator) (abs string, err error) {
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if _, err = f.WriteString(op.String()); err != nil {
		return "", err
	}
	return filepath.Abs(filename)
}

var generateCmd = &cobra.Command{
	Use:   "generate [infile]",
	Short: "Write the qubit Hamiltonian to " + OutputFile,
	Long: `Solve the molecule, build its fermionic Hamiltonian, apply the
Jordan-Wigner transformation and write the result to ` + OutputFile + `
in the current directory. Without an infile the molecule is H2 at
0.7414 Angstrom in STO-3G.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mol, err := loadMolecule(args)
		if err != nil {
			return err
		}
		return generate(cmd, mol)
	},
}

// loadMolecule returns the molecule in args[0], or the default
// molecule when no infile is given
func loadMolecule(args []string) (Molecule, error) {
	if len(args) == 0 {
		return DefaultMolecule(), nil
	}
	return ParseInfile(args[0])
}

func generate(cmd *cobra.Command, mol Molecule) error {
	abs, err := NewPipeline(logger).Run(mol, OutputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Qubit Hamiltonian saved to %s\n", abs)
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
