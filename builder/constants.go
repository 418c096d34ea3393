// SPDX-License-Identifier: MIT
// Package: kstar/builder
//
// constants.go — shared numeric constants used by validators and impl_*.go
// constructors. Kept file-local to avoid scattering magic numbers across
// the package.
package builder

const (
	// MaxPartition is the minimum legal size for either side of a bipartite
	// partition (the name is historical: it gates the floor, not a ceiling).
	MaxPartition = 1

	// MinProbability and MaxProbability bound RandomSparse's edge probability.
	MinProbability = 0.0
	MaxProbability = 1.0
)
