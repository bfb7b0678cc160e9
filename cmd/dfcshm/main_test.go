//go:build cgo

package main

import (
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"
)

func TestPickSubject(t *testing.T) {
	ids := []string{"alpha", "beta", "gamma"}

	require.Equal(t, 0, pickSubject(ids, ""))
	require.Equal(t, 1, pickSubject(ids, "beta"))
	require.Equal(t, 2, pickSubject(ids, "2"))
}

func TestExportableWindows(t *testing.T) {
	stack := []*mat64.Dense{mat64.NewDense(2, 2, nil), mat64.NewDense(2, 2, nil)}

	numWin, err := exportableWindows(stack)
	require.NoError(t, err)
	require.Equal(t, 2, numWin)

	// a window spanning the whole series leaves nothing to export
	_, err = exportableWindows(nil)
	require.Error(t, err)

	_, err = exportableWindows([]*mat64.Dense{})
	require.Error(t, err)
}
