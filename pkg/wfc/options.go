package wfc

// Options customizes a Solve call. The zero value is a valid set of
// defaults: wall-clock seed, first-uncollapsed/first-possible observation.
type Options struct {
	// Seed, if non-nil, makes the solve's randomness (and therefore its
	// output) reproducible: two solves with identical inputs and identical
	// seeds produce byte-identical output grids.
	Seed *int64

	// Heuristic selects how the observer picks the next cell and pattern to
	// collapse. Nil defaults to FirstUncollapsed.
	Heuristic ObserverStrategy
}

func (o *Options) strategy() ObserverStrategy {
	if o == nil || o.Heuristic == nil {
		return FirstUncollapsed{}
	}
	return o.Heuristic
}
