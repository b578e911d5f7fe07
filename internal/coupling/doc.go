// Package coupling computes the electromagnetic mutual coupling between
// parallel conductors from their per-unit-length capacitance matrix.
//
// Under the TEM approximation in a homogeneous, loss-less medium the
// electric and magnetic per-unit-length parameter matrices are related by
//
//	[L] = με [C]⁻¹
//
// so the inductance matrix follows from inverting the capacitance matrix
// and scaling by the medium product με (1/c² in vacuum). The coupling
// coefficient is then
//
//	k = M / √(L11·L22)
//
// bounded in [-1, 1] for any physically realizable conductor system.
//
//   - [Analyze]: two-conductor analysis from the three matrix entries
//   - [AnalyzeMatrix]: general N-conductor analysis
//   - [Matrix]: dense square matrix with Gauss-Jordan inversion
//   - [Constants]: medium parameters (vacuum by default)
//
// # Purity
//
// Analysis is a pure computation: no I/O, no logging, no shared state.
// Identical inputs produce identical results, so concurrent callers need
// no synchronization.
package coupling
