// Package component provides read-only diagnostics over recovered
// independent components: one-pass moment statistics, a negentropy
// approximation for ranking non-Gaussianity, power-spectrum summaries, and
// correlation-based matching against reference sources.
//
// Separated components are determined only up to sign and ordering, so
// comparisons against known sources must pair rows by correlation magnitude;
// [MatchSources] implements that pairing.
package component
