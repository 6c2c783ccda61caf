package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	t.Run("same as default", func(t *testing.T) {
		got, err := ParseInfile("testfiles/h2.yaml")
		require.NoError(t, err)
		assert.Equal(t, DefaultMolecule(), got)
	})

	t.Run("matches keyword infile", func(t *testing.T) {
		want, err := ParseInfile("testfiles/heh.in")
		require.NoError(t, err)
		got, err := ParseInfile("testfiles/heh.yml")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	tests := []struct {
		msg  string
		body string
		want error
	}{
		{"not yaml", "atoms: [", ErrBadKeyword},
		{"wrong type", "charge: one\n", ErrBadKeyword},
		{"two coordinates", "atoms:\n  - {symbol: H, coords: [0, 0]}\n",
			ErrBadGeometry},
		{"no symbol", "atoms:\n  - {coords: [0, 0, 0]}\n", ErrBadGeometry},
		{"empty atoms", "atoms: []\n", ErrBadGeometry},
	}
	for _, test := range tests {
		t.Run(test.msg, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "mol.yaml")
			require.NoError(t, os.WriteFile(filename, []byte(test.body), 0644))
			_, err := ParseYAML(filename)
			assert.ErrorIs(t, err, test.want)
		})
	}
}
