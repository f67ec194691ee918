// SPDX-License-Identifier: MIT
// types.go - shared RPQ request/result shapes and functional options,
// matching the teacher's option-struct convention (bfs/types.go).
package rpq

// Mode selects which vertex pairs a solver reports (spec §4.E/§4.F).
type Mode int

const (
	// AllReachable reports every (u, v) pair connected by a query-matching
	// path, over every graph vertex as a candidate source.
	AllReachable Mode = iota

	// PerSource restricts sources to the vertices passed via WithSources,
	// reporting only (u, v) pairs with u among those sources.
	PerSource
)

// Pair is one reachable (source, target) vertex pair in a Result.
type Pair struct {
	From string
	To   string
}

// Result is the solver-agnostic answer to an RPQ query.
type Result struct {
	Pairs []Pair
}

// Options configures an RPQ solve.
type Options struct {
	mode    Mode
	sources []string
	targets map[string]struct{}
}

// Option mutates an Options via the functional-options pattern.
type Option func(*Options)

// WithMode sets the reporting mode (default AllReachable).
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithSources restricts PerSource mode to the given vertex IDs; ignored in
// AllReachable mode.
func WithSources(ids ...string) Option {
	return func(o *Options) { o.sources = append(o.sources, ids...) }
}

// WithTargets restricts reported pairs to those ending at one of ids. A
// nil/empty call leaves every vertex eligible, matching spec §6's optional
// final set.
func WithTargets(ids ...string) Option {
	return func(o *Options) {
		if len(ids) == 0 {
			return
		}
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

func (o Options) allowsTarget(v string) bool {
	if o.targets == nil {
		return true
	}
	_, ok := o.targets[v]
	return ok
}
