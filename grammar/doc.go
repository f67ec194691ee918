// SPDX-License-Identifier: MIT
// Package grammar implements component G of the specification: CFG/WCNF,
// ECFG, and RSM data models plus the normalization front-end CFPQ's three
// solvers depend on (NormalizeWCNF, FromCFG/FromText, FromECFG).
//
// What & Why:
//
//	CFG holds raw textual productions. NormalizeWCNF turns an arbitrary CFG
//	into Weak Chomsky Normal Form (body length 0/1/2, length-1 bodies are
//	single terminals) plus the three derived tables CFPQ/Hellings and
//	CFPQ/Matrix consume directly: Nullable, TermProds, BinaryProds. ECFG
//	holds one regex per nonterminal; RSM compiles each nonterminal's regex
//	to a minimized DFA "box" via internal/regexdfa, the shape CFPQ/Tensor
//	needs.
//
// Grounded on the original Python implementation's cfg_utils.py, ecfg.py,
// and rsm.py (see _examples/original_source/project), expressed with this
// module's sentinel-error/functional-option conventions.
package grammar
