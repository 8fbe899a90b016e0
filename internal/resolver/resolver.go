package resolver

import "context"

// Resolver turns raw scan data into an ordered, validated wiring plan.
//
// A run is a pure, synchronous, single-pass transformation: it produces one
// complete Plan or one fatal diagnostic, never partial output. Each call builds
// its own state, so concurrent runs over independent inputs are safe.
type Resolver interface {
	Resolve(ctx context.Context, in Input) (Plan, error)
}
