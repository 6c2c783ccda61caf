package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = zerolog.Nop()
)

// rootCmd runs the default pipeline when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "qham",
	Short: "Jordan-Wigner qubit Hamiltonians for diatomic molecules",
	Long: `qham computes the electronic Hamiltonian of a small molecule with a
restricted Hartree-Fock calculation, maps it onto qubits with the
Jordan-Wigner transformation and writes it to ` + OutputFile + `.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, DefaultMolecule())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qham: %v\n", err)
		os.Exit(1)
	}
}
