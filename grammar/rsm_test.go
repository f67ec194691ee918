// SPDX-License-Identifier: MIT
package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudolf101/formal-lang-go/grammar"
)

func TestFromECFG_CompilesOneBoxPerNonterminal(t *testing.T) {
	e, err := grammar.FromText("S -> a*b*c*\n")
	require.NoError(t, err)

	rsm, err := grammar.FromECFG(e)
	require.NoError(t, err)
	require.Contains(t, rsm.Boxes, "S")
	require.NotEmpty(t, rsm.Boxes["S"].States)
}

func TestRSM_ToBundle_TagsStatesByBox(t *testing.T) {
	e, err := grammar.FromText("S -> a|b\nT -> c\n")
	require.NoError(t, err)

	rsm, err := grammar.FromECFG(e)
	require.NoError(t, err)

	b, err := rsm.ToBundle()
	require.NoError(t, err)
	require.Equal(t, len(rsm.Boxes["S"].States)+len(rsm.Boxes["T"].States), b.N())

	start, err := rsm.BoxStart(b, "S")
	require.NoError(t, err)
	require.True(t, b.IsStart(start))
}
