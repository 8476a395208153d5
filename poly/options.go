// SPDX-License-Identifier: MIT

package poly

// Root-finder defaults.
const (
	// DefaultPlaces is the number of decimal places roots are refined and
	// rounded to.
	DefaultPlaces = 8

	// DefaultMaxIterations caps the simultaneous iteration. Zero disables the cap.
	DefaultMaxIterations = 10000
)

const (
	panicPlacesInvalid        = "poly: WithPlaces: places must be in [0, 15]"
	panicMaxIterationsInvalid = "poly: WithMaxIterations: n must be >= 0"
)

// maxPlaces bounds WithPlaces; float64 carries about 15 significant digits.
const maxPlaces = 15

// Option configures Roots.
type Option func(*Options)

// Options holds the resolved root-finder configuration.
type Options struct {
	places  int // decimal places; DefaultPlaces
	maxIter int // 0 = unbounded; DefaultMaxIterations
}

// WithPlaces sets the convergence threshold to 10^-places and the rounding
// applied to the reported roots. Panics outside [0, 15].
func WithPlaces(places int) Option {
	if places < 0 || places > maxPlaces {
		panic(panicPlacesInvalid)
	}

	return func(o *Options) { o.places = places }
}

// WithMaxIterations caps the number of iterations. Zero removes the cap, so a
// pathological polynomial may iterate forever. Panics on negative n.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{places: DefaultPlaces, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
