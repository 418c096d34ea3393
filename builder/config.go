// SPDX-License-Identifier: MIT
// Package: kstar/builder
//
// config.go — shared configuration type for graph-fixture constructors.
//
// builderConfig is the immutable (per-call) state that every Constructor
// reads: vertex ID scheme, edge weight distribution, RNG source, and the
// bipartite partition prefixes. Functional options in options.go mutate a
// builderConfig before construction begins; Constructors themselves never
// mutate it.
package builder

import (
	"math/rand"
)

// defaultLeftPrefix and defaultRightPrefix name bipartite partitions when
// WithPartitionPrefix is not supplied.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// builderConfig holds the configurable parameters for graph-fixture builders.
// Not safe for concurrent mutation; each BuildGraph call owns its own config.
type builderConfig struct {
	rng         *rand.Rand // optional RNG; nil means deterministic behavior
	idFn        IDFn       // function to generate vertex IDs from indices
	weightFn    WeightFn   // function to generate edge weights
	leftPrefix  string     // bipartite left-partition prefix
	rightPrefix string     // bipartite right-partition prefix
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. Later options override
// earlier ones.
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
