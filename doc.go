// Package vas isolates the positive real roots of univariate polynomials with the
// Vincent–Akritas–Strzeboński continued-fraction method.
//
// Each root comes back as an Interval that holds exactly that root: an open interval
// between two points of the continued-fraction expansion, or a closed single point when
// the root was hit exactly. The search keeps a worklist of sub-problems, each a local
// polynomial together with the Mobius map from its variable back to the original one.
//
//	p := field.NewPolynomial[float64](field.Float64{}, []float64{7, -7, 0, 1})
//	roots, err := vas.FindRootIntervals(ctx, p)
//	// roots: (1, 1.5), (1.5, 2)
//
// Coefficients may be any type with a field.Ordered implementation that can represent
// +∞, such as field.Float64 or field.BigFloat.
package vas
