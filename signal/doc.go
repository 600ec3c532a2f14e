// Package signal generates deterministic source signals and linear mixtures
// for exercising and validating blind source separation.
//
// A [Generator] produces elementary waveforms (sine, square, sawtooth) and
// seeded noise; [Mix] applies a known mixing matrix to a set of sources,
// producing the observation matrix a separation routine is expected to
// invert.
package signal
