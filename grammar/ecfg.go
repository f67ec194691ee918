// SPDX-License-Identifier: MIT
// ecfg.go - ECFG: one regular expression per nonterminal, grounded on
// project/ecfg.py's ECFG.from_text / ECFG.from_pyformlang_cfg.
package grammar

import (
	"fmt"
	"strings"
)

// ECFG is an extended context-free grammar: each nonterminal has exactly one
// production whose right-hand side is a regular expression over terminals
// and nonterminals (spec §4.G). This is the shape RSM compiles box-by-box.
type ECFG struct {
	Start       string
	Variables   map[string]struct{}
	Productions map[string]string // nonterminal -> regex text
}

// FromCFG collapses a CFG's (possibly several) productions per head into a
// single regex per nonterminal by OR-combining the bodies, one alternative
// per production: "a S b" becomes the token sequence "a·S·b" and multiple
// bodies for the same head are joined with "|". An empty body contributes
// the literal "ε" alternative.
func FromCFG(cfg *CFG) (*ECFG, error) {
	if cfg == nil {
		return nil, fmt.Errorf("grammar: FromCFG: %w", ErrNilGrammar)
	}

	byHead := map[string][]string{}
	var order []string
	for _, p := range cfg.Productions {
		if _, seen := byHead[p.Head]; !seen {
			order = append(order, p.Head)
		}
		if len(p.Body) == 0 {
			byHead[p.Head] = append(byHead[p.Head], "ε")
			continue
		}
		byHead[p.Head] = append(byHead[p.Head], strings.Join(p.Body, "·"))
	}

	e := &ECFG{
		Start:       cfg.Start,
		Variables:   map[string]struct{}{},
		Productions: map[string]string{},
	}
	for nt := range cfg.Nonterminals {
		e.Variables[nt] = struct{}{}
	}
	for _, head := range order {
		e.Productions[head] = strings.Join(byHead[head], "|")
	}
	return e, nil
}

// FromText parses the ECFG textual format: exactly one "Head -> regex" line
// per nonterminal. A repeated head is ErrMalformedGrammar (spec's
// supplemented duplicate-head detection). The start symbol is the head of
// the first line.
func FromText(text string) (*ECFG, error) {
	e := &ECFG{
		Variables:   map[string]struct{}{},
		Productions: map[string]string{},
	}

	count := 0
	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		arrow := strings.Index(line, "->")
		if arrow < 0 {
			return nil, fmt.Errorf("grammar: FromText: line %d: missing \"->\": %w", lineNo+1, ErrMalformedGrammar)
		}
		head := strings.TrimSpace(line[:arrow])
		if head == "" {
			return nil, fmt.Errorf("grammar: FromText: line %d: empty head: %w", lineNo+1, ErrMalformedGrammar)
		}
		if _, dup := e.Productions[head]; dup {
			return nil, fmt.Errorf("grammar: FromText: line %d: duplicate head %q: %w", lineNo+1, head, ErrMalformedGrammar)
		}

		regex := strings.TrimSpace(line[arrow+2:])
		if regex == "" {
			return nil, fmt.Errorf("grammar: FromText: line %d: empty right-hand side: %w", lineNo+1, ErrMalformedGrammar)
		}

		if e.Start == "" {
			e.Start = head
		}
		count++
		e.Variables[head] = struct{}{}
		e.Productions[head] = regex
	}

	if count == 0 {
		return nil, fmt.Errorf("grammar: FromText: no productions found: %w", ErrMalformedGrammar)
	}
	return e, nil
}
