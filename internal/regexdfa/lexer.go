// SPDX-License-Identifier: MIT
// lexer.go - rune-level tokenizer: every letter/digit is its own Σ symbol
// token; '(' ')' '|' '*' '+' '?' are operators; '.' and '·' are ignored
// no-op concatenation separators; 'ε' is the epsilon atom; whitespace is
// ignored.
package regexdfa

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokEpsilon
	tokUnion
	tokStar
	tokPlus
	tokQuestion
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind   tokenKind
	symbol string
}

func tokenize(pattern string) ([]token, error) {
	var toks []token
	for _, r := range pattern {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '.' || r == '·':
			continue
		case r == '|':
			toks = append(toks, token{kind: tokUnion})
		case r == '*':
			toks = append(toks, token{kind: tokStar})
		case r == '+':
			toks = append(toks, token{kind: tokPlus})
		case r == '?':
			toks = append(toks, token{kind: tokQuestion})
		case r == '(':
			toks = append(toks, token{kind: tokLParen})
		case r == ')':
			toks = append(toks, token{kind: tokRParen})
		case r == 'ε':
			toks = append(toks, token{kind: tokEpsilon})
		default:
			toks = append(toks, token{kind: tokSymbol, symbol: string(r)})
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}
