// Package cauchy evaluates a holomorphic function at arbitrary points in the
// plane, given only its values on a global quadrature rule on a closed curve.
// Its defining property is that accuracy does not degrade as evaluation
// points approach the curve, a regime in which plain quadrature of the
// Cauchy integral loses all digits. This "close evaluation" is the core
// primitive needed by boundary integral equation solvers when targets lie
// near layer-potential sources.
//
// # Features
//
// We provide the following notable features:
//
//   - Compensated barycentric evaluation of values and first derivatives,
//     interior or exterior (see [EvaluateValue] and
//     [EvaluateValueAndDerivative])
//   - Nodal derivatives via the Schneider–Werner formula (see
//     [NodeDerivatives])
//   - A near-singular corrected scheme that repairs catastrophic
//     cancellation pair by pair for targets very close to nodes (see
//     [Options])
//   - Batch evaluation of many boundary-value vectors against shared
//     geometry, and materialization of the dense evaluation operator (see
//     [EvaluateBatch] and [EvaluateOperator])
//   - Periodic trapezoid-rule discretization of smooth closed curves (see
//     [PTR])
//
// # The scheme
//
// A function v holomorphic inside a closed curve Γ is determined by its
// boundary values through the Cauchy integral. Discretizing both the
// integral for v and the same integral applied to a known comparison
// function, and taking the ratio, yields a barycentric-type formula whose
// quadrature errors cancel: the ratio stays accurate to machine precision
// even when the target is within machine precision of the curve. The
// exterior case uses the comparison function 1/(z−a) with a an interior
// reference point, which plays the role of a regularizing pole.
//
// Derivatives are evaluated recursively: the derivative of a holomorphic
// function is holomorphic, so the same formula applies to the nodal
// derivative values, which are themselves obtained in closed form by the
// Schneider–Werner formula.
//
// Evaluation is one side at a time. [Interior] and [Exterior] fix the
// residue convention; target sets spanning both sides must be partitioned
// by the caller. Boundary data that is not consistent with a holomorphic
// function on the chosen side degrades accuracy silently — the package has
// no way to detect that.
//
// # Quadrature
//
// The evaluators consume a [Curve]: node positions, arc-length weights,
// unit outward normals, and the derived complex speed weights that all
// contour sums are taken against. Any global quadrature with spectral
// accuracy for the underlying data will do; [PTR] provides the standard
// choice for smooth curves, the periodic trapezoid rule.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [On the numerical evaluation of derivatives of Cauchy integrals] by Ioakimidis, Papadakis and Perdios
//   - [Some new aspects of rational interpolation] by Schneider and Werner
//   - [Barycentric Lagrange interpolation] by Berrut and Trefethen
//   - [On the evaluation of layer potentials close to their sources] by Helsing and Ojala
//   - [Evaluation of layer potentials close to the boundary for Laplace and Helmholtz problems on analytic planar domains] by Barnett
//
// [On the numerical evaluation of derivatives of Cauchy integrals]: https://doi.org/10.1007/BF02017352
// [Some new aspects of rational interpolation]: https://doi.org/10.1090/S0025-5718-1986-0842136-8
// [Barycentric Lagrange interpolation]: https://doi.org/10.1137/S0036144502417715
// [On the evaluation of layer potentials close to their sources]: https://doi.org/10.1016/j.jcp.2007.11.024
// [Evaluation of layer potentials close to the boundary for Laplace and Helmholtz problems on analytic planar domains]: https://doi.org/10.1137/120900253
package cauchy
