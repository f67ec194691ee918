// SPDX-License-Identifier: MIT
// dot.go - Graphviz DOT export, grounded on project/graph_utils.py's
// save_graph_dot (original source), supplementing spec.md §6's
// listed-but-not-required utilities.
package ioutil

import (
	"fmt"
	"io"

	"github.com/rudolf101/formal-lang-go/core"
)

// WriteDOT writes g as a directed Graphviz graph named name, one "A -> B
// [label="..."]" line per edge in g.Edges()'s deterministic ID order. An
// epsilon edge (Label == "") is rendered with label "ε".
func WriteDOT(w io.Writer, g *core.Graph, name string) error {
	if g == nil {
		return ErrNilGraph
	}
	if name == "" {
		name = "G"
	}

	if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
		return fmt.Errorf("ioutil: WriteDOT: %w", err)
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "  %q;\n", v); err != nil {
			return fmt.Errorf("ioutil: WriteDOT: %w", err)
		}
	}
	for _, e := range g.Edges() {
		label := e.Label
		if label == "" {
			label = "ε"
		}
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n", e.From, e.To, label); err != nil {
			return fmt.Errorf("ioutil: WriteDOT: %w", err)
		}
	}
	if _, err := fmt.Fprint(w, "}\n"); err != nil {
		return fmt.Errorf("ioutil: WriteDOT: %w", err)
	}

	return nil
}
