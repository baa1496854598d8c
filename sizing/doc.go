// Package sizing provides the closed-form sample size calculations behind
// the samplesize CLI.
//
// # Reading Guide
//
// Start with these files:
//   - estimator.go: Params and SampleSize, the two-proportion power formula
//   - types.go: TestType, Correction and EffectMode enumerations
//   - mde.go: the reverse direction (minimum detectable effect from a size)
//   - duration.go: converting a per-variant size into experiment days
//
// # Conventions
//
// Rates are fractions in [0, 1]. A baseline greater than 1 is read as a
// percentage and divided by 100. The effect parameter is relative to the
// baseline unless EffectMode is Absolute; either way the denominator of the
// power formula is the absolute difference between the treatment and
// baseline rates.
//
// Every function in this package is pure. Inputs are not validated by the
// calculations themselves: degenerate inputs (a zero effect, a probability
// outside (0, 1)) produce +Inf or NaN instead of an error. Callers that take
// user input should run Params.Validate first.
//
// Sub-packages:
//   - sizing/scenario/: named scenarios, the scenario runner and report
//     writer, and the regression/symmetry verification harness
//   - sizing/simulate/: Monte Carlo power check of a sized design
package sizing
