// SPDX-License-Identifier: MIT
// info.go - GraphInfo: a summary-statistics helper supplementing
// spec.md §6's graph-description utilities.
package ioutil

import (
	"sort"

	"github.com/rudolf101/formal-lang-go/core"
)

// Info summarizes a graph: vertex/edge counts and its label alphabet.
type Info struct {
	VertexCount int
	EdgeCount   int
	Labels      []string
}

// GraphInfo computes Info for g. Labels is sorted and excludes the empty
// (epsilon) label.
func GraphInfo(g *core.Graph) (Info, error) {
	if g == nil {
		return Info{}, ErrNilGraph
	}

	labelSet := map[string]struct{}{}
	edges := g.Edges()
	for _, e := range edges {
		if e.Label == "" {
			continue
		}
		labelSet[e.Label] = struct{}{}
	}

	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return Info{
		VertexCount: len(g.Vertices()),
		EdgeCount:   len(edges),
		Labels:      labels,
	}, nil
}
