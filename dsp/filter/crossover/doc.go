// Package crossover provides a three-band Linkwitz-Riley crossover network
// for splitting an audio signal into low, mid, and high bands.
//
// Each band edge is an independent LR4 cascade (two cascaded 2nd-order
// Butterworth filters), so every band sees the unmodified input rather than
// the residue of a serial crossover chain. The low/mid and mid/high band
// edges may overlap: the mid band's highpass cutoff sits at or below the low
// band's lowpass cutoff, and likewise at the upper hub. Overlapping edges
// keep energy near the crossover frequencies visible in both neighboring
// bands, which suits spectral visualization better than a notch-free
// reconstruction split.
//
// Example:
//
//	tb, _ := crossover.NewThreeBand(crossover.DefaultThreeBandConfig(), 44100)
//	low, mid, high := tb.ProcessSample(inputSample)
package crossover
