// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for the grammar package.
package grammar

import "errors"

var (
	// ErrMalformedGrammar is the MalformedGrammar error kind (spec §7):
	// an unparsable CFG/ECFG line, or a duplicate ECFG head.
	ErrMalformedGrammar = errors.New("grammar: malformed grammar")

	// ErrInvalidStartSymbol indicates the requested start nonterminal is
	// absent from the grammar (spec §7).
	ErrInvalidStartSymbol = errors.New("grammar: invalid start symbol")

	// ErrNilGrammar indicates a nil *CFG/*ECFG/*RSM receiver or argument.
	ErrNilGrammar = errors.New("grammar: nil grammar")
)
