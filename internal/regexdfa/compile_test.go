// SPDX-License-Identifier: MIT
package regexdfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCompile_StarChain reproduces spec.md §8 scenario 1: "a*b*c*" compiles
// to a 3-state minimal DFA, state 0 initial, all three states final, with
// transitions 0-a->0, 0-b->1, 0-c->2, 1-b->1, 1-c->2, 2-c->2.
func TestCompile_StarChain(t *testing.T) {
	nfa, err := Compile("a*b*c*")
	require.NoError(t, err)
	require.Len(t, nfa.States, 3)
	require.Equal(t, []any{0}, nfa.Start)
	require.ElementsMatch(t, []any{0, 1, 2}, nfa.Final)

	got := map[[2]any]any{}
	for _, tr := range nfa.Transitions {
		got[[2]any{tr.From, tr.Symbol}] = tr.To
	}
	require.Equal(t, 0, got[[2]any{0, "a"}])
	require.Equal(t, 1, got[[2]any{0, "b"}])
	require.Equal(t, 2, got[[2]any{0, "c"}])
	require.Equal(t, 1, got[[2]any{1, "b"}])
	require.Equal(t, 2, got[[2]any{1, "c"}])
	require.Equal(t, 2, got[[2]any{2, "c"}])
}

func TestCompile_Union(t *testing.T) {
	nfa, err := Compile("a*|b")
	require.NoError(t, err)
	require.NotEmpty(t, nfa.States)
	require.NotEmpty(t, nfa.Final)
}

func TestCompile_MalformedRegex(t *testing.T) {
	_, err := Compile("(a")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedRegex)
}

func TestCompile_EmptyPattern(t *testing.T) {
	nfa, err := Compile("")
	require.NoError(t, err)
	require.Len(t, nfa.States, 1)
	require.ElementsMatch(t, nfa.Start, nfa.Final)
}
