// SPDX-License-Identifier: MIT
// Package regexdfa implements component D's contract — regex_to_min_dfa —
// the one external collaborator spec.md §4.D requires something concrete
// behind: a from-scratch regex engine, grounded on coregx/coregex's
// two-stage shape (_examples/coregx-coregex/nfa, .../dfa): parse to an AST,
// Thompson-construct an ε-NFA, subset-construct a DFA, then minimize by
// partition refinement (Moore's algorithm).
//
// Alphabet model: every letter or digit rune is its own Σ symbol (a
// single-character alphabet), matching every regex and grammar-production
// literal in spec.md §8 ("a*b*c*", "a*|b", "aSb | ab", ...). '.' and '·' are
// accepted as no-op concatenation separators (concatenation is already
// implicit between adjacent atoms); 'ε' denotes the empty-string atom.
package regexdfa
