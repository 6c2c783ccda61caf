package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Parse a Hamiltonian file and print the operator it describes",
	Long: `Read a qubit Hamiltonian written by generate (default ` + OutputFile + `),
rebuild the operator and print it along with its size.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := ReadHamiltonian(hamiltonianArg(args))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Constructed Hamiltonian (%d terms on %d qubits):\n",
			op.Len(), op.NQubits())
		fmt.Fprintln(out, op)
		return nil
	},
}

// hamiltonianArg returns the file named in args or OutputFile
func hamiltonianArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return OutputFile
}

func init() {
	rootCmd.AddCommand(showCmd)
}
