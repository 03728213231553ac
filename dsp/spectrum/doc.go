// Package spectrum provides magnitude and power spectra helpers on top of
// the algo-fft backend, with vectorized complex-to-real kernels from
// algo-vecmath.
//
// In this module the package serves as verification tooling: filter bank
// impulse responses are transformed with [FromSignal] and checked against
// the analytic biquad responses.
package spectrum
