package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var electrons int

var energyCmd = &cobra.Command{
	Use:   "energy [file]",
	Short: "Exact ground-state energy of a Hamiltonian file",
	Long: `Diagonalize the qubit Hamiltonian in file (default ` + OutputFile + `)
and print its lowest eigenvalue. With --electrons the search is limited
to states with that many occupied spin orbitals.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := hamiltonianArg(args)
		op, err := ReadHamiltonian(filename)
		if err != nil {
			return err
		}
		t := NewTimer("diagonalize", logger)
		e, err := GroundStateEnergy(op, electrons)
		t.Stop()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ground state energy: %.10f Eh\n", e)
		return nil
	},
}

func init() {
	energyCmd.Flags().IntVarP(&electrons, "electrons", "n", -1,
		"Number of electrons, negative for the whole Fock space")
	rootCmd.AddCommand(energyCmd)
}
