// SPDX-License-Identifier: MIT

package poly

import (
	"math"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// residualNoise scales Σ|a_i||r|^i into the rounding noise of evaluating a
// monic polynomial at r in float64 arithmetic.
const residualNoise = 4 * 0x1p-52

// clusterRadii are the relative radii, widest first, at which nearby
// candidates are tested as one multiple root.
var clusterRadii = []float64{1e-2, 1e-3, 1e-4, 1e-5, 1e-6}

// polishSteps caps the Newton refinement of a collapsed cluster.
const polishSteps = 16

// rootSeed is the non-real starting point; candidate k starts at rootSeed^k.
// Keeping it off the real axis stops symmetric polynomials from collapsing
// every candidate onto one trajectory.
var rootSeed = scalar.NewComplex(0.4, 0.9)

// Roots returns all Degree() complex roots of p by Durand–Kerner
// (Weierstrass) simultaneous iteration.
//
// Implementation:
//   - Stage 1: divide p by its leading coefficient (monic form).
//   - Stage 2: seed candidate k with rootSeed^k.
//   - Stage 3: each sweep computes, from the previous iterate only,
//     delta_k = p(r_k) / Π_{j≠k}(r_k − r_j) and sets r_k -= delta_k.
//   - Stage 4: stop once every candidate has settled. A candidate settles
//     when |delta_k| < 10^-places or when |p(r_k)| is within the float64
//     noise of Σ|a_i||r_k|^i.
//   - Stage 5: collapse clusters of candidates around a multiple root onto
//     one polished value (see collapseClusters), then round every root to
//     places decimals.
//
// Errors:
//   - ErrZeroPolynomial when p == 0.
//   - ErrNonConvergence when the iteration cap is hit.
//   - scalar.ErrDivisionByZero when two candidates coincide.
//
// Complexity:
//   - Time O(k·d²) for k sweeps over degree d, Space O(d).
//
// Notes:
//   - Constants have no roots and yield an empty, non-nil slice.
//   - Multiple roots converge linearly and their updates never shrink below
//     the rounding noise, so they settle on the residual test spread around
//     the true root. The spread is removed by Stage 5, so a root of
//     multiplicity m is reported m times with one value.
func Roots(p Poly[scalar.Complex], opts ...Option) ([]scalar.Complex, error) {
	o := gatherOptions(opts...)
	if p.IsZero() {
		return nil, polyErrorf(opRoots, ErrZeroPolynomial)
	}
	d := p.Degree()
	if d == 0 {
		return []scalar.Complex{}, nil
	}

	monic, err := DivScalar(p, p.Lead())
	if err != nil {
		return nil, polyErrorf(opRoots, err)
	}

	cur := make([]scalar.Complex, d)
	next := make([]scalar.Complex, d)
	for k := range cur {
		if cur[k], err = rootSeed.Pow(k); err != nil {
			return nil, polyErrorf(opRoots, err)
		}
	}

	abs := make([]float64, d+1)
	for i, c := range monic.Coefficients() {
		abs[i] = c.Magnitude()
	}

	bound := math.Pow(10, -float64(o.places))
	for iter := 0; ; iter++ {
		if o.maxIter > 0 && iter >= o.maxIter {
			return nil, polyErrorf(opRoots, ErrNonConvergence)
		}
		settled := true
		for k, rk := range cur {
			den := rk.One()
			for j, rj := range cur {
				if j != k {
					den = den.Mul(rk.Sub(rj))
				}
			}
			val := monic.Eval(rk)
			delta, err := val.Div(den)
			if err != nil {
				return nil, polyErrorf(opRoots, err)
			}
			next[k] = rk.Sub(delta)
			if delta.Magnitude() >= bound && val.Magnitude() > residualNoise*hornerAbs(abs, rk.Magnitude()) {
				settled = false
			}
		}
		cur, next = next, cur
		if settled {
			break
		}
	}

	collapseClusters(monic, cur, abs)

	out := make([]scalar.Complex, d)
	for k, r := range cur {
		out[k] = r.Round(o.places)
	}

	return out, nil
}

// hornerAbs evaluates Σ abs[i]·x^i for x >= 0.
func hornerAbs(abs []float64, x float64) float64 {
	acc := abs[len(abs)-1]
	for i := len(abs) - 2; i >= 0; i-- {
		acc = acc*x + abs[i]
	}

	return acc
}

// collapseClusters replaces every group of candidates that surrounds one
// multiple root by a single polished value, in place.
//
// Candidates around a root of multiplicity m settle about the m-th root of
// the rounding noise away from it. A group within radius·max(1, |r|) of its
// first member is polished from its centroid (polishMultiple) and accepted
// only if p is rounding noise there; two distinct roots at distance h leave
// a residual of order h² and stay apart. Radii shrink so that a multiple
// root next to a distinct one is still isolated.
func collapseClusters(monic Poly[scalar.Complex], roots []scalar.Complex, abs []float64) {
	d := len(roots)
	slack := 2 * float64(d) * residualNoise
	merged := make([]bool, d)
	for _, radius := range clusterRadii {
		for i := range roots {
			if merged[i] {
				continue
			}
			reach := radius * math.Max(1, roots[i].Magnitude())
			group := []int{i}
			for j := i + 1; j < d; j++ {
				if !merged[j] && roots[j].Sub(roots[i]).Magnitude() <= reach {
					group = append(group, j)
				}
			}
			if len(group) < 2 {
				continue
			}

			var sum scalar.Complex
			for _, k := range group {
				sum = sum.Add(roots[k])
			}
			c := polishMultiple(monic, sum.Scale(1/float64(len(group))), len(group))
			if monic.Eval(c).Magnitude() > slack*hornerAbs(abs, c.Magnitude()) {
				continue // distinct roots, not one multiple root
			}
			for _, k := range group {
				roots[k] = c
				merged[k] = true
			}
		}
	}
}

// polishMultiple refines c towards a root of multiplicity m by Newton steps
// on the (m-1)-th derivative, where that root is simple.
func polishMultiple(monic Poly[scalar.Complex], c scalar.Complex, m int) scalar.Complex {
	q := monic
	for k := 1; k < m; k++ {
		q = q.Derivative()
	}
	dq := q.Derivative()
	for iter := 0; iter < polishSteps; iter++ {
		step, err := q.Eval(c).Div(dq.Eval(c))
		if err != nil {
			return c // flat derivative, keep the centroid
		}
		c = c.Sub(step)
		if step.Magnitude() <= 0x1p-52*math.Max(1, c.Magnitude()) {
			break
		}
	}

	return c
}
