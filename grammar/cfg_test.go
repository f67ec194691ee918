// SPDX-License-Identifier: MIT
package grammar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudolf101/formal-lang-go/grammar"
)

func TestParseCFGText_TwoCyclesGrammar(t *testing.T) {
	// spec §8 scenario 4's grammar: S -> a S b | a b
	cfg, err := grammar.ParseCFGText("S -> a S b | a b\n")
	require.NoError(t, err)
	require.Equal(t, "S", cfg.Start)
	require.Len(t, cfg.Productions, 2)
	require.Contains(t, cfg.Nonterminals, "S")
	require.Contains(t, cfg.Terminals, "a")
	require.Contains(t, cfg.Terminals, "b")
}

func TestParseCFGText_EpsilonAndComments(t *testing.T) {
	// spec §8 scenario 5's nullable grammar: S -> ε | a S b S | S S
	cfg, err := grammar.ParseCFGText("# a comment\nS -> ε | a S b S | S S\n")
	require.NoError(t, err)
	require.Len(t, cfg.Productions, 3)

	var sawEmpty bool
	for _, p := range cfg.Productions {
		if len(p.Body) == 0 {
			sawEmpty = true
		}
	}
	require.True(t, sawEmpty)
}

func TestParseCFGText_MissingArrow(t *testing.T) {
	_, err := grammar.ParseCFGText("S a b\n")
	require.Error(t, err)
	require.True(t, errors.Is(err, grammar.ErrMalformedGrammar))
}

func TestParseCFGText_NoProductions(t *testing.T) {
	_, err := grammar.ParseCFGText("# only a comment\n\n")
	require.Error(t, err)
	require.True(t, errors.Is(err, grammar.ErrMalformedGrammar))
}

func TestParseCFGText_QuotedNonterminal(t *testing.T) {
	cfg, err := grammar.ParseCFGText(`S -> 'a' S 'b'` + "\n")
	require.NoError(t, err)
	require.Contains(t, cfg.Nonterminals, "a")
	require.Contains(t, cfg.Nonterminals, "b")
}
