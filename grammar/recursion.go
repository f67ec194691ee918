// SPDX-License-Identifier: MIT
// recursion.go - DetectRecursion: reports whether a normalized grammar is
// self-referential, reusing dfs.DetectCycles (kept verbatim from the
// teacher) over the same nonterminal dependency DAG useless.go builds for
// reachability. A recursive grammar is the common case (S -> a S b), so
// this is a diagnostic, not a validity check.
package grammar

import (
	"github.com/rudolf101/formal-lang-go/dfs"
)

// DetectRecursion reports whether w's nonterminals form at least one
// dependency cycle (some nonterminal can derive itself, directly or
// transitively, via binary productions), and if so, one such cycle as a
// sequence of nonterminal names.
func DetectRecursion(w *WCNF) (bool, []string, error) {
	g := dependencyGraph(w)

	has, cycles, err := dfs.DetectCycles(g)
	if err != nil || !has {
		return has, nil, err
	}
	return true, cycles[0], nil
}
