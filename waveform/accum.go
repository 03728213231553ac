package waveform

import (
	"math"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

// binAccumulator reduces a band's samples into a running peak and sum of
// squares. The sum is kept in float64 so that long bins do not drift.
type binAccumulator struct {
	peak   float64
	rmsSum float64
}

func (a *binAccumulator) add(x float64) {
	if abs := math.Abs(x); abs > a.peak {
		a.peak = abs
	}
	a.rmsSum += x * x
}

// finish reduces the accumulated sums into a quantized bin. count must
// be positive; the orchestrator only finishes non-empty windows.
func (a *binAccumulator) finish(count float64) Bin {
	energy := core.ClampUnit(math.Sqrt(a.rmsSum/count) * math.Sqrt2)

	return Bin{
		Peak:   ValFromFloat(a.peak),
		Energy: ValFromFloat(energy),
	}
}

// filteredBinAccumulator accumulates all four bands independently and
// finishes them together into one bin.
type filteredBinAccumulator struct {
	sampleCount int
	all         binAccumulator
	low         binAccumulator
	mid         binAccumulator
	high        binAccumulator
}

func (a *filteredBinAccumulator) add(all, low, mid, high float64) {
	a.sampleCount++
	a.all.add(all)
	a.low.add(low)
	a.mid.add(mid)
	a.high.add(high)
}

// finish atomically drains the accumulator into an immutable bin and
// resets it for the next window. Reports false when no samples were
// accumulated.
func (a *filteredBinAccumulator) finish() (FilteredBin, bool) {
	if a.sampleCount == 0 {
		return FilteredBin{}, false
	}

	count := float64(a.sampleCount)
	bin := FilteredBin{
		All:         a.all.finish(count),
		Low:         a.low.finish(count),
		Mid:         a.mid.finish(count),
		High:        a.high.finish(count),
		SampleCount: a.sampleCount,
	}
	*a = filteredBinAccumulator{}

	return bin, true
}
