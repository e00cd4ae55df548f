package life

import "life-ca/pkg/core"

// Seeder decides the initial alive state for the cell at linear index i.
// Seeding is a policy of the caller, not of the update rule; the engine
// accepts any assignment without change to its behavior.
type Seeder func(i int) bool

// DefaultPattern is the fixed arithmetic seed over the linear index.
func DefaultPattern(i int) bool {
	return i%2 == 0 || i%7 == 0
}

// RandomPattern returns a deterministic per-cell random seeder.
func RandomPattern(seed int64) Seeder {
	rng := core.NewRNG(seed)
	return func(int) bool { return rng.Bool() }
}
