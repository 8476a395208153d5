// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot exposes the resolved defaults+options to external tests.
func OptionsSnapshot(opts ...Option) (eps float64, rootPlaces, maxIter int, eigenTol float64) {
	o := gatherOptions(defaultOptions(), opts...)

	return o.eps, o.rootPlaces, o.maxIter, o.eigenTolerance()
}

// EigenTolerances exposes the eigenvector threshold range and the
// eigenvalue merge resolution.
func EigenTolerances(opts ...Option) (start, widest, resolution float64) {
	o := gatherOptions(defaultOptions(), opts...)

	return o.eigenStartTolerance(), o.eigenTolerance(), o.rootResolution()
}
