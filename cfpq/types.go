// SPDX-License-Identifier: MIT
// types.go - shared CFPQ request/result shapes, functional options, and the
// Algorithm tagged enum (spec's supplemented CFPQAlgorithm, matching
// test_cfpq_tensor.py's cfpq(CFPQAlgorithm.TENSOR, ...) call shape).
package cfpq

// Algorithm selects which of the three solvers answers a query.
type Algorithm int

const (
	// HELLINGS is the worklist-over-triples solver (spec §4.H).
	HELLINGS Algorithm = iota
	// MATRIX is the per-nonterminal matrix fixed-point solver (spec §4.I).
	MATRIX
	// TENSOR is the RSM-graph intersection solver (spec §4.J).
	TENSOR
)

// Pair is one reachable (source, target) vertex pair in a Result.
type Pair struct {
	From string
	To   string
}

// Result is the solver-agnostic answer to a CFPQ query.
type Result struct {
	Pairs []Pair
}

// Options configures a CFPQ solve.
type Options struct {
	sources map[string]struct{}
	targets map[string]struct{}
}

// Option mutates Options via the functional-options pattern.
type Option func(*Options)

// WithSources restricts reported pairs to those whose source is in ids.
// A nil/empty call leaves every vertex eligible.
func WithSources(ids ...string) Option {
	return func(o *Options) {
		if len(ids) == 0 {
			return
		}
		if o.sources == nil {
			o.sources = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.sources[id] = struct{}{}
		}
	}
}

// WithTargets restricts reported pairs to those whose target is in ids.
func WithTargets(ids ...string) Option {
	return func(o *Options) {
		if o.targets == nil {
			o.targets = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.targets[id] = struct{}{}
		}
	}
}

func buildOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) allows(from, to string) bool {
	if o.sources != nil {
		if _, ok := o.sources[from]; !ok {
			return false
		}
	}
	if o.targets != nil {
		if _, ok := o.targets[to]; !ok {
			return false
		}
	}
	return true
}
