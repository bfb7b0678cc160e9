// Package dfc computes dynamic functional connectivity summaries over
// cohorts of ROI time series.
//
// A cohort holds one ROI-by-timepoint matrix per subject. For every
// subject the package slides a fixed-length window along the time axis,
// computes the Pearson correlation matrix of the windowed segments with
// a zeroed diagonal, Fisher z-transforms the coefficients, and reduces
// the stack of windows to two scalars: network variation (NV), the mean
// absolute successive change of coupling over distinct ROI pairs, and
// inter-hemispheric dynamics (ICdyn), the same reduction restricted to
// homotopic ROI pairs. Degenerate windows, such as those covering
// zero-padded tails, yield non-finite coefficients: constant segments
// correlate as NaN and drop out of the sums, while perfectly correlated
// segments diverge under the z-transform, after which the reduction
// averages only the steps recorded before the divergence.
package dfc
