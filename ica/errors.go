package ica

import "errors"

// Errors returned by [Run] for invalid input. All of them are fatal: no
// partial result is produced. Non-fatal conditions (non-convergence, rank
// deficiency of the covariance) are reported through [Result] fields instead.
var (
	ErrEmptyInput            = errors.New("ica: observation matrix is empty")
	ErrRaggedInput           = errors.New("ica: observation rows must have equal length")
	ErrNonFiniteInput        = errors.New("ica: observation matrix contains non-finite values")
	ErrInsufficientSamples   = errors.New("ica: sample count must be >= signal count")
	ErrInvalidComponentCount = errors.New("ica: component count out of range")
)
