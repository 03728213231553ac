package crossover

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
	"github.com/cwbudde/algo-waveform/dsp/filter/design"
)

// Audible frequency limits for crossover placement.
const (
	MinFreqHz = 20.0
	MaxFreqHz = 20000.0
)

// lrOrder is the Linkwitz-Riley order used for every band edge
// (LR4 = two cascaded 2nd-order Butterworth filters).
const lrOrder = 4

// ThreeBandConfig holds the four crossover frequencies of a [ThreeBand]
// network. The low/mid and mid/high band edges overlap deliberately:
// LowHPHz ≤ LowLPHz and HighHPHz ≤ HighLPHz, so adjacent bands share
// energy around each crossover hub instead of leaving a notch.
type ThreeBandConfig struct {
	LowLPHz  float64 // low band upper edge (lowpass cutoff)
	LowHPHz  float64 // mid band lower edge (highpass cutoff), ≤ LowLPHz
	HighLPHz float64 // mid band upper edge (lowpass cutoff), ≥ HighHPHz
	HighHPHz float64 // high band lower edge (highpass cutoff)
}

// DefaultThreeBandConfig returns the default crossover frequencies.
//
// The 200/1600 Hz hubs follow common DJ analyzer band splits
// (Rekordbox uses ~200/2000 Hz, Superpowered 200/1600 Hz); the
// 160/1200 Hz counterparts widen the mid band into both neighbors.
func DefaultThreeBandConfig() ThreeBandConfig {
	return ThreeBandConfig{
		LowLPHz:  200,
		LowHPHz:  160,
		HighLPHz: 1600,
		HighHPHz: 1200,
	}
}

// Validate checks the frequency ordering and range invariants.
func (cfg ThreeBandConfig) Validate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("crossover: sample rate must be positive, got %v", sampleRate)
	}

	nyquist := sampleRate / 2
	for _, f := range []struct {
		name string
		hz   float64
	}{
		{"low lowpass", cfg.LowLPHz},
		{"low highpass", cfg.LowHPHz},
		{"high lowpass", cfg.HighLPHz},
		{"high highpass", cfg.HighHPHz},
	} {
		if f.hz < MinFreqHz || f.hz > MaxFreqHz {
			return fmt.Errorf("crossover: %s frequency %v Hz outside [%v, %v]", f.name, f.hz, MinFreqHz, MaxFreqHz)
		}
		if f.hz >= nyquist {
			return fmt.Errorf("crossover: %s frequency %v Hz must be below Nyquist (%v)", f.name, f.hz, nyquist)
		}
	}

	if cfg.LowHPHz > cfg.LowLPHz {
		return fmt.Errorf("crossover: mids must overlap lows: low highpass %v Hz > low lowpass %v Hz", cfg.LowHPHz, cfg.LowLPHz)
	}
	if cfg.LowLPHz >= cfg.HighHPHz {
		return fmt.Errorf("crossover: empty mid band: low lowpass %v Hz >= high highpass %v Hz", cfg.LowLPHz, cfg.HighHPHz)
	}
	if cfg.HighHPHz > cfg.HighLPHz {
		return fmt.Errorf("crossover: mids must overlap highs: high highpass %v Hz > high lowpass %v Hz", cfg.HighHPHz, cfg.HighLPHz)
	}

	return nil
}

// ThreeBand splits an input signal into low, mid, and high bands using
// independent Linkwitz-Riley LR4 cascades per band edge:
//
//	low  = LR4 lowpass(LowLPHz)
//	mid  = LR4 highpass(LowHPHz) → LR4 lowpass(HighLPHz)
//	high = LR4 highpass(HighHPHz)
//
// Unlike a serial multi-way crossover, the three bands are filtered
// independently from the same input, so adjacent bands overlap around
// each crossover hub as configured.
type ThreeBand struct {
	low  *biquad.Chain
	mid  *biquad.Chain
	high *biquad.Chain
	cfg  ThreeBandConfig
	sr   float64
}

// NewThreeBand creates a three-band crossover network at the given sample
// rate. Returns an error when the configuration violates the frequency
// ordering or range invariants (see [ThreeBandConfig.Validate]).
func NewThreeBand(cfg ThreeBandConfig, sampleRate float64) (*ThreeBand, error) {
	if err := cfg.Validate(sampleRate); err != nil {
		return nil, err
	}

	lowLP := design.LinkwitzRileyLP(cfg.LowLPHz, lrOrder, sampleRate)
	lowHP := design.LinkwitzRileyHP(cfg.LowHPHz, lrOrder, sampleRate)
	highLP := design.LinkwitzRileyLP(cfg.HighLPHz, lrOrder, sampleRate)
	highHP := design.LinkwitzRileyHP(cfg.HighHPHz, lrOrder, sampleRate)
	if lowLP == nil || lowHP == nil || highLP == nil || highHP == nil {
		return nil, fmt.Errorf("crossover: failed to design LR%d bank at %v Hz", lrOrder, sampleRate)
	}

	return &ThreeBand{
		low:  biquad.NewChain(lowLP),
		mid:  biquad.NewCascade(lowHP, highLP),
		high: biquad.NewChain(highHP),
		cfg:  cfg,
		sr:   sampleRate,
	}, nil
}

// ProcessSample filters one input sample and returns the three band
// outputs. No allocation occurs on this path.
func (tb *ThreeBand) ProcessSample(x float64) (low, mid, high float64) {
	return tb.low.ProcessSample(x), tb.mid.ProcessSample(x), tb.high.ProcessSample(x)
}

// ProcessBlock filters a block of input samples, writing the band outputs
// to low, mid, and high. All four slices must have the same length.
func (tb *ThreeBand) ProcessBlock(input, low, mid, high []float64) {
	n := len(input)
	if n == 0 {
		return
	}
	core.CopyInto(low, input)
	core.CopyInto(mid, input)
	core.CopyInto(high, input)
	tb.low.ProcessBlock(low)
	tb.mid.ProcessBlock(mid)
	tb.high.ProcessBlock(high)
}

// Low returns the low band chain for direct inspection or analysis.
func (tb *ThreeBand) Low() *biquad.Chain { return tb.low }

// Mid returns the mid band chain (highpass and lowpass cascaded).
func (tb *ThreeBand) Mid() *biquad.Chain { return tb.mid }

// High returns the high band chain.
func (tb *ThreeBand) High() *biquad.Chain { return tb.high }

// Config returns the crossover frequencies.
func (tb *ThreeBand) Config() ThreeBandConfig { return tb.cfg }

// SampleRate returns the sample rate in Hz.
func (tb *ThreeBand) SampleRate() float64 { return tb.sr }

// Reset clears the internal filter states of all three band chains.
func (tb *ThreeBand) Reset() {
	tb.low.Reset()
	tb.mid.Reset()
	tb.high.Reset()
}
