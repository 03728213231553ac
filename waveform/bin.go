package waveform

import "math"

// Bin summarizes one frequency band over a fixed sample window.
// It is immutable once created.
type Bin struct {
	// Peak is the clamped absolute peak value in [0, 1].
	Peak Val

	// Energy is the scaled RMS value in [0, 1]. For a sinusoid the RMS
	// is sqrt(2) below the peak; Energy rescales it back toward peak
	// amplitude and clamps at 1.
	Energy Val
}

// FilteredVal carries one quantized value per band, projected out of a
// [FilteredBin] by [FilteredBin.Peak] or [FilteredBin.Energy].
type FilteredVal struct {
	All  Val
	Low  Val
	Mid  Val
	High Val
}

// FilteredBin is the externally visible unit of the waveform: one [Bin]
// per band plus the number of samples the window covered.
type FilteredBin struct {
	All  Bin
	Low  Bin
	Mid  Bin
	High Bin

	// SampleCount is the number of input samples reduced into this bin.
	// Summed over a whole stream it equals the total sample count.
	SampleCount int
}

// Peak projects the per-band peak values.
func (b *FilteredBin) Peak() FilteredVal {
	return FilteredVal{
		All:  b.All.Peak,
		Low:  b.Low.Peak,
		Mid:  b.Mid.Peak,
		High: b.High.Peak,
	}
}

// Energy projects the per-band energy values.
func (b *FilteredBin) Energy() FilteredVal {
	return FilteredVal{
		All:  b.All.Energy,
		Low:  b.Low.Energy,
		Mid:  b.Mid.Energy,
		High: b.High.Energy,
	}
}

// SpectralFlatness returns the ratio of geometric to arithmetic mean of
// the three band energies, in [0, 1]. A value of 1 means a perfectly
// flat spectrum; lower values indicate a more tonal, peaked spectrum.
//
// The all-zero bin is defined as perfectly flat and returns exactly 1.
//
// See https://en.wikipedia.org/wiki/Spectral_flatness
func (b *FilteredBin) SpectralFlatness() float64 {
	low := b.Low.Energy.Float()
	mid := b.Mid.Energy.Float()
	high := b.High.Energy.Float()

	arithmeticMean := (low + mid + high) / 3
	if arithmeticMean == 0 {
		// Perfectly flat spectrum.
		return 1
	}

	geometricMean := math.Cbrt(low * mid * high)
	return geometricMean / arithmeticMean
}

// Waveform is an ordered, append-only sequence of bins in stream order.
type Waveform []FilteredBin

// TotalSamples returns the number of input samples covered by all bins.
func (w Waveform) TotalSamples() int {
	total := 0
	for i := range w {
		total += w[i].SampleCount
	}
	return total
}
