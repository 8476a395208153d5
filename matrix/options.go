// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps is stored on every Dense at construction and inherited by results.
//     Equal uses it as an absolute tolerance; reduction scales it by the
//     largest entry magnitude of its input.
//   - Root-finder options only affect the eigen entry points; they are
//     forwarded to poly.Roots.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvalgebra/poly"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for zero tests and approximate equality.
	DefaultEpsilon = 1e-9

	// DefaultRootPlaces is the decimal precision eigenvalues are refined to.
	DefaultRootPlaces = poly.DefaultPlaces

	// DefaultMaxIterations caps the eigenvalue root finder (0 = unbounded).
	DefaultMaxIterations = poly.DefaultMaxIterations
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRootPlacesInvalid    = "matrix: WithRootPlaces: places must be in [0, 15]"
	panicMaxIterationsInvalid = "matrix: WithMaxIterations: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps        float64 // >= 0; DefaultEpsilon
	rootPlaces int     // [0, 15]; DefaultRootPlaces
	maxIter    int     // >= 0; DefaultMaxIterations
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - eps·max|m_ij| is the pivot zero test in Reduce, and so the rank test
//     behind Rank, Nullspace and Inverse. Equal compares entries within eps.
//     Larger eps relaxes both.
//
// AI-Hints:
//   - WithEpsilon(0) gives exact zero tests, which is what Real inputs with
//     small integer entries can afford.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRootPlaces sets the decimal places eigenvalues are refined and rounded to.
func WithRootPlaces(places int) Option {
	if places < 0 || places > 15 {
		panic(panicRootPlacesInvalid)
	}

	return func(o *Options) { o.rootPlaces = places }
}

// WithMaxIterations caps the eigenvalue root finder. Zero removes the cap.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:        DefaultEpsilon,
		rootPlaces: DefaultRootPlaces,
		maxIter:    DefaultMaxIterations,
	}
}

// gatherOptions applies opts over base; nil options are ignored.
func gatherOptions(base Options, opts ...Option) Options {
	o := base
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// rootOptions translates the root-finder part of o into poly options.
func (o Options) rootOptions() []poly.Option {
	return []poly.Option{poly.WithPlaces(o.rootPlaces), poly.WithMaxIterations(o.maxIter)}
}

// eigenTolerance is the widest relative threshold used for eigenvector
// nullspaces: roots of multiplicity m carry only about 1/m of their digits.
func (o Options) eigenTolerance() float64 {
	t := math.Pow(10, -float64(o.rootPlaces)/2)
	if o.eps > t {
		return o.eps
	}

	return t
}

// eigenStartTolerance is the first relative threshold tried for eigenvector
// nullspaces: one place looser than the rounding of the eigenvalue.
func (o Options) eigenStartTolerance() float64 {
	t := math.Pow(10, -float64(o.rootPlaces-1))
	if o.eps > t {
		t = o.eps
	}
	if hi := o.eigenTolerance(); t > hi {
		return hi
	}

	return t
}

// rootResolution is half a unit in the last place eigenvalues are rounded to.
func (o Options) rootResolution() float64 {
	return 0.5 * math.Pow(10, -float64(o.rootPlaces))
}
