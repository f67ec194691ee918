// SPDX-License-Identifier: MIT
// loaders.go - CFG/YAML loading helpers (SPEC_FULL.md's supplemented
// features), in the teacher's pattern of thin os/yaml wrappers around a
// pure-string parser (ioutil mirrors the same shape for graphs).
package grammar

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCFGString is an alias of ParseCFGText kept for symmetry with
// LoadCFGFile/LoadCFGYAML.
func LoadCFGString(text string) (*CFG, error) {
	return ParseCFGText(text)
}

// LoadCFGFile reads path and parses it as the textual CFG production-list
// format.
func LoadCFGFile(path string) (*CFG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: LoadCFGFile(%q): %w", path, err)
	}
	return ParseCFGText(string(data))
}

// cfgYAML is the on-disk shape for LoadCFGYAML: a start symbol and a flat
// map of head -> list of alternative bodies, one token list per body.
type cfgYAML struct {
	Start       string              `yaml:"start"`
	Productions map[string][]string `yaml:"productions"`
}

// LoadCFGYAML reads path as YAML in the shape:
//
//	start: S
//	productions:
//	  S: ["a S b", "a b"]
func LoadCFGYAML(path string) (*CFG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: LoadCFGYAML(%q): %w", path, err)
	}

	var doc cfgYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("grammar: LoadCFGYAML(%q): %w", path, err)
	}
	if doc.Start == "" {
		return nil, fmt.Errorf("grammar: LoadCFGYAML(%q): missing start: %w", path, ErrMalformedGrammar)
	}

	g := NewCFG(doc.Start)
	for head, bodies := range doc.Productions {
		for _, body := range bodies {
			if body == "" || body == "ε" || body == "epsilon" {
				g.AddProduction(head, nil)
				continue
			}
			g.AddProduction(head, strings.Fields(body))
		}
	}
	return g, nil
}
