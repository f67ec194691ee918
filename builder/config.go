// config.go centralizes the one setting these constructors need: the
// vertex-ID scheme. A labeled multigraph has no edge weights to
// distribute and no randomness to seed, so builderConfig carries only
// idFn, unlike the teacher's generic builder (which also threaded an RNG
// and a WeightFn through every constructor).
package builder

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// As a rule, option constructors never panic at runtime, and ignore nil
// inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - idFn: function mapping index→vertex ID (IDFn).
//
// builderConfig is not safe for concurrent mutation; each builder
// invocation should create its own config via newBuilderConfig.
type builderConfig struct {
	idFn IDFn // function to generate vertex IDs from indices
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// the default: DefaultIDFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		idFn: DefaultIDFn, // decimal IDs "0","1",…
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// If idFn is nil, this option is a no-op.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}
