// SPDX-License-Identifier: MIT
// cfg.go - CFG data model plus the textual production-list parser
// (spec §6: "A -> α1 | α2 | ...", lowercase tokens are terminals,
// uppercase tokens are nonterminals, an empty body is ε/blank).
package grammar

import (
	"fmt"
	"strings"
	"unicode"
)

// Production is one CFG rule Head -> Body. An empty Body denotes Head -> ε.
type Production struct {
	Head string
	Body []string
}

// CFG is a raw context-free grammar: a start symbol and a flat list of
// productions, grounded on project/cfg_utils.py's get_cfg_from_text.
type CFG struct {
	Start         string
	Nonterminals  map[string]struct{}
	Terminals     map[string]struct{}
	Productions   []Production
}

// NewCFG returns an empty CFG rooted at start.
func NewCFG(start string) *CFG {
	return &CFG{
		Start:        start,
		Nonterminals: map[string]struct{}{start: {}},
		Terminals:    map[string]struct{}{},
	}
}

// isNonterminal applies spec §6's lexical convention: a token beginning
// with an uppercase letter, or wrapped in single/double quotes, names a
// nonterminal; everything else is a terminal.
func isNonterminal(tok string) bool {
	if len(tok) >= 2 && (tok[0] == '\'' || tok[0] == '"') {
		return true
	}
	r := []rune(tok)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

func unquote(tok string) string {
	if len(tok) >= 2 && (tok[0] == '\'' || tok[0] == '"') && tok[len(tok)-1] == tok[0] {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// AddProduction appends head -> body to the grammar, classifying each body
// token as terminal or nonterminal and registering it in the relevant set.
// body == nil or an empty slice denotes head -> ε.
func (g *CFG) AddProduction(head string, body []string) {
	g.Nonterminals[head] = struct{}{}
	clean := make([]string, len(body))
	for i, tok := range body {
		tok = unquote(tok)
		clean[i] = tok
		if isNonterminal(body[i]) {
			g.Nonterminals[tok] = struct{}{}
		} else {
			g.Terminals[tok] = struct{}{}
		}
	}
	g.Productions = append(g.Productions, Production{Head: head, Body: clean})
}

// ParseCFGText parses the textual production-list format: one or more
// productions per line, "Head -> body1 | body2 | ...", bodies are
// whitespace-separated token lists, "ε" (or an empty body) denotes the
// empty string. Lines that are blank or start with '#' are ignored.
// The grammar's start symbol is the head of the first production line.
func ParseCFGText(text string) (*CFG, error) {
	var g *CFG

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		arrow := strings.Index(line, "->")
		if arrow < 0 {
			return nil, fmt.Errorf("grammar: ParseCFGText: line %d: missing \"->\": %w", lineNo+1, ErrMalformedGrammar)
		}
		head := strings.TrimSpace(line[:arrow])
		if head == "" {
			return nil, fmt.Errorf("grammar: ParseCFGText: line %d: empty head: %w", lineNo+1, ErrMalformedGrammar)
		}

		if g == nil {
			g = NewCFG(head)
		}

		rest := line[arrow+2:]
		for _, alt := range strings.Split(rest, "|") {
			alt = strings.TrimSpace(alt)
			if alt == "" || alt == "ε" || alt == "epsilon" {
				g.AddProduction(head, nil)
				continue
			}
			g.AddProduction(head, strings.Fields(alt))
		}
	}

	if g == nil {
		return nil, fmt.Errorf("grammar: ParseCFGText: no productions found: %w", ErrMalformedGrammar)
	}

	return g, nil
}
