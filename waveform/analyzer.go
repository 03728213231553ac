package waveform

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/filter/crossover"
)

// Defaults for [New]. The bin resolution of 150 per second follows the
// Superpowered analyzer; the crossover frequencies come from
// [crossover.DefaultThreeBandConfig].
const (
	DefaultSampleRate    = 44100.0
	DefaultBinsPerSecond = 150.0
)

// MinSamplesPerBin is the floor on the bin window length. It prevents
// degenerate sub-sample bins when the requested resolution approaches or
// exceeds the sample rate.
const MinSamplesPerBin = 64.0

// SampleProcessor shapes the input signal before the band split. Both
// [github.com/cwbudde/algo-waveform/dsp/filter/biquad.Section] and
// [github.com/cwbudde/algo-waveform/dsp/filter/biquad.Chain] satisfy it.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// config holds analyzer construction parameters.
type config struct {
	sampleRate    float64
	binsPerSecond float64
	crossover     crossover.ThreeBandConfig
	shaper        SampleProcessor
}

func defaultConfig() config {
	return config{
		sampleRate:    DefaultSampleRate,
		binsPerSecond: DefaultBinsPerSecond,
		crossover:     crossover.DefaultThreeBandConfig(),
	}
}

// Option configures an [Analyzer].
type Option func(*config)

// WithSampleRate sets the input sample rate in Hz.
func WithSampleRate(hz float64) Option {
	return func(cfg *config) { cfg.sampleRate = hz }
}

// WithBinsPerSecond sets the target bin resolution. The effective
// resolution is capped so a bin never covers fewer than
// [MinSamplesPerBin] samples.
func WithBinsPerSecond(bins float64) Option {
	return func(cfg *config) { cfg.binsPerSecond = bins }
}

// WithCrossover sets the band-split frequencies.
func WithCrossover(c crossover.ThreeBandConfig) Option {
	return func(cfg *config) { cfg.crossover = c }
}

// WithInputShaper installs a filter applied to the input before the band
// split, e.g. an equal-loudness weighting chain from
// [github.com/cwbudde/algo-waveform/dsp/filter/weighting]. By default
// the input passes through unshaped.
func WithInputShaper(p SampleProcessor) Option {
	return func(cfg *config) { cfg.shaper = p }
}

// Analyzer is the streaming orchestrator: it drives the crossover filter
// bank and the bin accumulator, emitting one completed bin each time the
// window boundary is crossed.
//
// The bin boundary is tracked as a fractional pending-sample count
// against a possibly fractional samples-per-bin threshold. The residual
// carries over between bins, so with a non-integer ratio individual bins
// vary by one sample while the long-run average converges exactly.
//
// Not safe for concurrent use.
type Analyzer struct {
	pending       float64
	samplesPerBin float64
	bank          *crossover.ThreeBand
	shaper        SampleProcessor
	accum         filteredBinAccumulator
	binsPerSecond float64
}

// New creates an analyzer. The configuration is validated once here;
// the per-sample path performs no checks.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sampleRate <= 0 {
		return nil, fmt.Errorf("waveform: sample rate must be > 0: %f", cfg.sampleRate)
	}
	if cfg.binsPerSecond <= 0 {
		return nil, fmt.Errorf("waveform: bins per second must be > 0: %f", cfg.binsPerSecond)
	}

	bank, err := crossover.NewThreeBand(cfg.crossover, cfg.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}

	samplesPerBin := cfg.sampleRate / cfg.binsPerSecond
	if samplesPerBin < MinSamplesPerBin {
		samplesPerBin = MinSamplesPerBin
	}

	return &Analyzer{
		samplesPerBin: samplesPerBin,
		bank:          bank,
		shaper:        cfg.shaper,
		binsPerSecond: cfg.binsPerSecond,
	}, nil
}

// ProcessSample pushes one input sample through the analyzer. When the
// previous window is complete its bin is returned with ok == true,
// before the new sample is accumulated; the returned bin therefore never
// includes the sample that triggered the flush.
//
// No allocation occurs on this path.
func (a *Analyzer) ProcessSample(x float64) (bin FilteredBin, ok bool) {
	if a.pending >= a.samplesPerBin {
		a.pending -= a.samplesPerBin
		bin, ok = a.accum.finish()
	}

	all := x
	if a.shaper != nil {
		all = a.shaper.ProcessSample(x)
	}
	low, mid, high := a.bank.ProcessSample(all)
	a.accum.add(all, low, mid, high)
	a.pending++

	return bin, ok
}

// ProcessBlock pushes a block of samples and appends any completed bins
// to dst, returning the extended slice. Partial state at the end of the
// block carries over to the next call.
func (a *Analyzer) ProcessBlock(samples []float64, dst Waveform) Waveform {
	for _, x := range samples {
		if bin, ok := a.ProcessSample(x); ok {
			dst = append(dst, bin)
		}
	}
	return dst
}

// Finish flushes the partially accumulated final bin at stream end.
// Reports false when no samples were pending. The analyzer must be
// [Analyzer.Reset] before reuse for a new stream.
func (a *Analyzer) Finish() (FilteredBin, bool) {
	a.pending = 0
	return a.accum.finish()
}

// Reset restores the analyzer to its initial state: filter delay lines,
// accumulator sums, and the fractional pending count are all cleared.
// The input shaper is reset too when it supports it.
func (a *Analyzer) Reset() {
	a.pending = 0
	a.accum = filteredBinAccumulator{}
	a.bank.Reset()
	if r, ok := a.shaper.(interface{ Reset() }); ok {
		r.Reset()
	}
}

// SamplesPerBin returns the effective, possibly fractional, window
// length in samples.
func (a *Analyzer) SamplesPerBin() float64 { return a.samplesPerBin }

// SampleRate returns the configured sample rate in Hz.
func (a *Analyzer) SampleRate() float64 { return a.bank.SampleRate() }

// BinsPerSecond returns the requested bin resolution.
func (a *Analyzer) BinsPerSecond() float64 { return a.binsPerSecond }

// Crossover returns the band-split frequencies in use.
func (a *Analyzer) Crossover() crossover.ThreeBandConfig { return a.bank.Config() }

// Analyze runs a complete sample slice through a fresh analyzer and
// returns the full waveform including the final partial bin.
func Analyze(samples []float64, opts ...Option) (Waveform, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}

	w := a.ProcessBlock(samples, nil)
	if bin, ok := a.Finish(); ok {
		w = append(w, bin)
	}
	return w, nil
}
