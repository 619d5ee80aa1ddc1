package contracts

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSuite(t *testing.T) {
	cs := GetSuite(".")
	require.Len(t, cs, 3)
	require.Equal(t, "Social Netconfig", cs[0].Name, "netconfig must be deployed first")

	for _, c := range cs {
		fi, err := os.Stat(c.SourceDir)
		require.NoError(t, err, c.Name)
		require.True(t, fi.IsDir(), c.Name)

		_, err = os.Stat(c.ConfigPath)
		require.NoError(t, err, c.Name)

		_, err = os.Stat(path.Join(c.SourceDir, "contract.go"))
		require.NoError(t, err, c.Name)
	}
}
