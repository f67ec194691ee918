// Package builder provides reusable "functional-options"-style building
// blocks for constructing the fixed-shape labeled multigraphs this module's
// solvers are tested and demonstrated against.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the vertex-ID scheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:    decimal strings ("0","1",…).
//   - Topology constructors (Constructor implementations):
//     – TwoCycles:      two labeled cycles sharing one vertex.
//     – LabeledChain:   a simple path, one symbol per edge.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not
//     duplicate vertices or edges.
//   - Runtime errors for invalid build parameters wrap sentinel errors
//     (fmt.Errorf with %w), so callers can branch with errors.Is.
//   - Documented algorithmic complexity (O(n), O(V+E), etc.) per
//     constructor.
package builder
