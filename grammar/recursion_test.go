// SPDX-License-Identifier: MIT
package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudolf101/formal-lang-go/grammar"
)

func TestDetectRecursion_RecursiveGrammar(t *testing.T) {
	cfg, err := grammar.ParseCFGText("S -> a S b | a b\n")
	require.NoError(t, err)
	w, err := grammar.NormalizeWCNF(cfg)
	require.NoError(t, err)

	has, cycle, err := grammar.DetectRecursion(w)
	require.NoError(t, err)
	require.True(t, has)
	require.NotEmpty(t, cycle)
}

func TestDetectRecursion_NonRecursiveGrammar(t *testing.T) {
	cfg, err := grammar.ParseCFGText("S -> a b\n")
	require.NoError(t, err)
	w, err := grammar.NormalizeWCNF(cfg)
	require.NoError(t, err)

	has, cycle, err := grammar.DetectRecursion(w)
	require.NoError(t, err)
	require.False(t, has)
	require.Nil(t, cycle)
}
