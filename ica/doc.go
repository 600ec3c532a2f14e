// Package ica implements FastICA blind source separation.
//
// Given an observation matrix of N simultaneously recorded signals with M
// samples each, [Run] estimates a linear unmixing transform that maximizes
// the statistical independence (non-Gaussianity) of the recovered component
// signals, along with the corresponding mixing transform and the components
// themselves.
//
// The pipeline has four stages: the observations are centered and whitened
// via an eigendecomposition of their sample covariance, a contrast
// nonlinearity approximating negentropy is selected, a fixed-point iteration
// estimates an orthogonal unmixing matrix in whitened space (jointly for all
// components, or one component at a time with deflation), and the result is
// mapped back to the original signal space.
//
// # Usage
//
// One-shot separation with defaults (tanh contrast, symmetric approach, all
// components):
//
//	result, err := ica.Run(observations)
//
// Reproducible runs and custom parameters use functional options:
//
//	result, err := ica.Run(observations,
//		ica.WithComponents(3),
//		ica.WithNonlinearity(ica.NonlinearityGaussian),
//		ica.WithApproach(ica.ApproachDeflation),
//		ica.WithSeed(42),
//	)
//
// # Output ambiguity
//
// ICA recovers source directions only up to sign and ordering; this is an
// identifiability limit of the model, not a defect. Callers must not assume
// a canonical component order or sign, and comparisons against reference
// sources should match by correlation and permutation, never by direct
// equality.
//
// Reaching the iteration cap without meeting the convergence tolerance is
// not an error: the last iterate is returned and Result.Converged is false.
package ica
