package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture returns the absolute path of a file in testfiles, for use
// after changing directory
func fixture(t *testing.T, name string) string {
	t.Helper()
	abs, err := filepath.Abs(filepath.Join("testfiles", name))
	require.NoError(t, err)
	return abs
}

// execute runs the command line args and returns what it printed
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPipelineHamiltonian(t *testing.T) {
	want, err := ReadHamiltonian("testfiles/hamiltonian.txt")
	require.NoError(t, err)
	got, solved, err := NewPipeline(zerolog.Nop()).Hamiltonian(DefaultMolecule())
	require.NoError(t, err)
	assert.Equal(t, 15, got.Len())
	assert.Equal(t, solved.NQubits(), got.NQubits())
	assert.True(t, got.Equal(want, 1e-6), "got\n%s\nwanted\n%s", got, want)
	// correlation lowers the ground state below Hartree-Fock
	e, err := GroundStateEnergy(got, 2)
	require.NoError(t, err)
	assert.Less(t, e, solved.HFEnergy)
}

func TestPipelineTimesFailedStage(t *testing.T) {
	var buf bytes.Buffer
	mol := DefaultMolecule()
	mol.Basis = "not-a-basis"
	_, _, err := NewPipeline(newLogger(&buf, true)).Hamiltonian(mol)
	assert.ErrorIs(t, err, ErrUnknownBasis)
	assert.Contains(t, buf.String(), "stage finished")
	assert.Contains(t, buf.String(), "scf")
}

func TestPipelineRun(t *testing.T) {
	chdir(t, t.TempDir())
	p := NewPipeline(zerolog.Nop())

	abs, err := p.Run(DefaultMolecule(), OutputFile)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
	assert.Equal(t, OutputFile, filepath.Base(abs))
	first, err := os.ReadFile(OutputFile)
	require.NoError(t, err)
	assert.Len(t, strings.Split(string(first), "\n"), 15)
	assert.True(t, strings.HasPrefix(string(first), "(-0.098863"))

	t.Run("deterministic", func(t *testing.T) {
		_, err := p.Run(DefaultMolecule(), OutputFile)
		require.NoError(t, err)
		second, err := os.ReadFile(OutputFile)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("overwrites longer file", func(t *testing.T) {
		junk := strings.Repeat("stale line\n", 500)
		require.NoError(t, os.WriteFile(OutputFile, []byte(junk), 0644))
		_, err := p.Run(DefaultMolecule(), OutputFile)
		require.NoError(t, err)
		got, err := os.ReadFile(OutputFile)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("failure keeps existing file", func(t *testing.T) {
		mol := DefaultMolecule()
		mol.Basis = "not-a-basis"
		_, err := p.Run(mol, OutputFile)
		assert.ErrorIs(t, err, ErrUnknownBasis)
		got, err := os.ReadFile(OutputFile)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("failure writes nothing", func(t *testing.T) {
		mol := DefaultMolecule()
		mol.Multiplicity = 3
		_, err := p.Run(mol, "other.txt")
		assert.ErrorIs(t, err, ErrOpenShell)
		assert.NoFileExists(t, "other.txt")
	})
}

func TestWriteHamiltonian(t *testing.T) {
	op := NewQubitOperator()
	filename := filepath.Join(t.TempDir(), "empty.txt")
	_, err := WriteHamiltonian(filename, op)
	require.NoError(t, err)
	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "0", string(got))

	_, err = WriteHamiltonian(filepath.Join(t.TempDir(), "no", "dir.txt"), op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand(t *testing.T) {
	chdir(t, t.TempDir())
	out, err := execute(t)
	require.NoError(t, err)
	abs, err := filepath.Abs(OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "Qubit Hamiltonian saved to "+abs+"\n", out)
	assert.FileExists(t, OutputFile)

	_, err = execute(t, "extra")
	assert.Error(t, err)
}

func TestSubcommands(t *testing.T) {
	h2 := fixture(t, "h2.in")
	badbasis := fixture(t, "badbasis.in")
	molproOut := fixture(t, "molpro.out")
	chdir(t, t.TempDir())

	t.Run("generate", func(t *testing.T) {
		out, err := execute(t, "generate", h2)
		require.NoError(t, err)
		assert.Contains(t, out, "Qubit Hamiltonian saved to ")
		assert.FileExists(t, OutputFile)
	})

	t.Run("generate bad basis", func(t *testing.T) {
		require.NoError(t, os.Remove(OutputFile))
		out, err := execute(t, "generate", badbasis)
		assert.ErrorIs(t, err, ErrUnknownBasis)
		assert.Empty(t, out)
		assert.NoFileExists(t, OutputFile)
	})

	t.Run("show", func(t *testing.T) {
		_, err := execute(t, "generate")
		require.NoError(t, err)
		out, err := execute(t, "show")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 16)
		assert.Equal(t, "Constructed Hamiltonian (15 terms on 4 qubits):",
			lines[0])
	})

	t.Run("energy", func(t *testing.T) {
		out, err := execute(t, "energy", "-n", "2")
		require.NoError(t, err)
		assert.Regexp(t, `^Ground state energy: -1\.13727017\d+ Eh\n$`, out)
		out, err = execute(t, "energy", "--electrons", "-1", OutputFile)
		require.NoError(t, err)
		assert.Regexp(t, `^Ground state energy: -1\.13727017\d+ Eh\n$`, out)
	})

	t.Run("energy missing file", func(t *testing.T) {
		_, err := execute(t, "energy", "-n", "-1", "nope.txt")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("molpro", func(t *testing.T) {
		out, err := execute(t, "molpro", h2)
		require.NoError(t, err)
		assert.Equal(t, "Molpro input saved to H2_jw.inp\n", out)
		assert.FileExists(t, "H2_jw.inp")
	})

	t.Run("check", func(t *testing.T) {
		out, err := execute(t, "check", molproOut)
		require.NoError(t, err)
		assert.Regexp(t, `molpro\s+-1\.116684387085`, out)
		assert.Regexp(t, `diff\s+-?0\.0000000000\d\d`, out)
	})
}

// chdir changes the working directory to dir for the duration of the
// test, like testing.T.Chdir in newer Go releases
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}
