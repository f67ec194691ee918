// SPDX-License-Identifier: MIT
package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudolf101/formal-lang-go/automaton"
	"github.com/rudolf101/formal-lang-go/matrix"
)

func TestBundleFromMatrices_RoundTrip(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1))

	b, err := automaton.BundleFromMatrices(
		[]automaton.State{"u", "v"},
		[]int{0},
		[]int{1},
		map[automaton.Symbol]*matrix.Matrix{"a": m.Freeze()},
	)
	require.NoError(t, err)
	require.Equal(t, 2, b.N())
	require.True(t, b.IsStart(0))
	require.True(t, b.IsFinal(1))
	require.NotNil(t, b.Matrix("a"))
}

func TestBundleFromMatrices_BadShape(t *testing.T) {
	m, err := matrix.New(3, 3)
	require.NoError(t, err)

	_, err = automaton.BundleFromMatrices(
		[]automaton.State{"u", "v"},
		nil, nil,
		map[automaton.Symbol]*matrix.Matrix{"a": m.Freeze()},
	)
	require.Error(t, err)
}
