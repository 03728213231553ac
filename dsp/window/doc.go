// Package window provides the window functions used for FFT-based
// verification of the analyzer's filter bank: Rectangular, Hann, Hamming,
// and Blackman.
//
// Windows are generated as coefficient slices and applied with vectorized
// multiplication from algo-vecmath.
package window
