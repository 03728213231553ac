// Package design provides biquad coefficient design for the filter types the
// waveform analyzer needs: RBJ lowpass/highpass sections, Butterworth
// cascades, and Linkwitz-Riley (squared-Butterworth) crossover cascades.
//
// All designers return normalized [biquad.Coefficients] (a0 = 1) ready for
// use with [biquad.NewChain]. Invalid parameters yield zero coefficients or
// nil slices rather than errors; user-facing validation belongs to the
// construction sites that consume these designs (see dsp/filter/crossover).
package design
