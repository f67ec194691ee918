// SPDX-License-Identifier: MIT
// csv.go - CSV edge-list graph loading: one (src, label, dst) triple per
// row, grounded on project/graph_utils.py's load_graph.
package ioutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rudolf101/formal-lang-go/core"
)

// LoadCSV reads r as a headerless CSV edge list, one (src, label, dst)
// triple per row, and builds a directed multigraph from it. A row with a
// field count other than 3 is ErrUnknownGraph.
func LoadCSV(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())

	for rowNo := 1; ; rowNo++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ioutil: LoadCSV: row %d: %w", rowNo, ErrUnknownGraph)
		}

		src, label, dst := record[0], record[1], record[2]
		if src == "" || dst == "" {
			return nil, fmt.Errorf("ioutil: LoadCSV: row %d: empty endpoint: %w", rowNo, ErrUnknownGraph)
		}
		if !g.HasVertex(src) {
			if err := g.AddVertex(src); err != nil {
				return nil, fmt.Errorf("ioutil: LoadCSV: row %d: %w", rowNo, err)
			}
		}
		if !g.HasVertex(dst) {
			if err := g.AddVertex(dst); err != nil {
				return nil, fmt.Errorf("ioutil: LoadCSV: row %d: %w", rowNo, err)
			}
		}
		if label == "ε" || label == "epsilon" {
			label = ""
		}
		if _, err := g.AddEdge(src, dst, label); err != nil {
			return nil, fmt.Errorf("ioutil: LoadCSV: row %d: %w", rowNo, err)
		}
	}

	return g, nil
}

// LoadCSVFile opens path and parses it via LoadCSV.
func LoadCSVFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioutil: LoadCSVFile(%q): %w", path, err)
	}
	defer f.Close()

	return LoadCSV(f)
}

// WriteCSV writes g's edges as a headerless (src, label, dst) CSV, in
// g.Edges()'s deterministic ID order.
func WriteCSV(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	cw := csv.NewWriter(w)
	for _, e := range g.Edges() {
		if err := cw.Write([]string{e.From, e.Label, e.To}); err != nil {
			return fmt.Errorf("ioutil: WriteCSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
