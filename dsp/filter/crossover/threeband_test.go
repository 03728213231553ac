package crossover

import (
	"math"
	"testing"
)

func TestNewThreeBand_Defaults(t *testing.T) {
	tb, err := NewThreeBand(DefaultThreeBandConfig(), 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	if tb.SampleRate() != 44100 {
		t.Errorf("SampleRate = %v, want 44100", tb.SampleRate())
	}

	// LR4 per edge: 2 sections for low and high, 4 for the mid bandpass.
	if n := tb.Low().NumSections(); n != 2 {
		t.Errorf("low sections = %d, want 2", n)
	}
	if n := tb.Mid().NumSections(); n != 4 {
		t.Errorf("mid sections = %d, want 4", n)
	}
	if n := tb.High().NumSections(); n != 2 {
		t.Errorf("high sections = %d, want 2", n)
	}
}

func TestNewThreeBand_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  ThreeBandConfig
		sr   float64
	}{
		{
			name: "zero sample rate",
			cfg:  DefaultThreeBandConfig(),
			sr:   0,
		},
		{
			name: "low hp above low lp (no low/mid overlap)",
			cfg:  ThreeBandConfig{LowLPHz: 200, LowHPHz: 250, HighLPHz: 1600, HighHPHz: 1200},
			sr:   44100,
		},
		{
			name: "empty mid band",
			cfg:  ThreeBandConfig{LowLPHz: 1300, LowHPHz: 160, HighLPHz: 1600, HighHPHz: 1200},
			sr:   44100,
		},
		{
			name: "high hp above high lp (no mid/high overlap)",
			cfg:  ThreeBandConfig{LowLPHz: 200, LowHPHz: 160, HighLPHz: 1600, HighHPHz: 1700},
			sr:   44100,
		},
		{
			name: "below audible range",
			cfg:  ThreeBandConfig{LowLPHz: 200, LowHPHz: 10, HighLPHz: 1600, HighHPHz: 1200},
			sr:   44100,
		},
		{
			name: "above audible range",
			cfg:  ThreeBandConfig{LowLPHz: 200, LowHPHz: 160, HighLPHz: 30000, HighHPHz: 1200},
			sr:   96000,
		},
		{
			name: "above nyquist",
			cfg:  ThreeBandConfig{LowLPHz: 200, LowHPHz: 160, HighLPHz: 1600, HighHPHz: 1200},
			sr:   2000,
		},
	}
	for _, c := range cases {
		if _, err := NewThreeBand(c.cfg, c.sr); err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}
}

func TestThreeBand_CrossoverMagnitudes(t *testing.T) {
	tb, err := NewThreeBand(DefaultThreeBandConfig(), 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	// LR4 is -6.02 dB at its crossover frequency.
	if db := tb.Low().MagnitudeDB(200, 44100); math.Abs(db+6.02) > 0.1 {
		t.Errorf("low band at 200 Hz = %v dB, want ~-6.02", db)
	}
	if db := tb.High().MagnitudeDB(1200, 44100); math.Abs(db+6.02) > 0.1 {
		t.Errorf("high band at 1200 Hz = %v dB, want ~-6.02", db)
	}
}

func TestThreeBand_MidPassbandFlat(t *testing.T) {
	tb, err := NewThreeBand(DefaultThreeBandConfig(), 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	// Well inside the mid band (160..1600 Hz) the bandpass is ~0 dB.
	for _, f := range []float64{450, 550, 650} {
		if db := tb.Mid().MagnitudeDB(f, 44100); math.Abs(db) > 0.3 {
			t.Errorf("mid band at %v Hz = %v dB, want ~0", f, db)
		}
	}
}

func TestThreeBand_StopbandAttenuation(t *testing.T) {
	tb, err := NewThreeBand(DefaultThreeBandConfig(), 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	// Two octaves outside each band edge, LR4 gives ~-48 dB.
	if db := tb.Low().MagnitudeDB(800, 44100); db > -40 {
		t.Errorf("low band at 800 Hz = %v dB, want < -40", db)
	}
	if db := tb.High().MagnitudeDB(300, 44100); db > -40 {
		t.Errorf("high band at 300 Hz = %v dB, want < -40", db)
	}
	if db := tb.Mid().MagnitudeDB(40, 44100); db > -40 {
		t.Errorf("mid band at 40 Hz = %v dB, want < -40", db)
	}
	if db := tb.Mid().MagnitudeDB(6400, 44100); db > -40 {
		t.Errorf("mid band at 6.4 kHz = %v dB, want < -40", db)
	}
}

func TestThreeBand_SineSteadyState(t *testing.T) {
	tb, err := NewThreeBand(DefaultThreeBandConfig(), 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	// Feed a 550 Hz full-scale sine (mid passband). After the filters
	// settle, the mid output peak approaches the input peak while low
	// and high stay near zero.
	const freq = 550.0
	step := 2 * math.Pi * freq / 44100

	var lowPeak, midPeak, highPeak float64
	for i := range 44100 {
		x := math.Sin(step * float64(i))
		low, mid, high := tb.ProcessSample(x)
		if i < 4410 {
			continue // settling
		}
		lowPeak = math.Max(lowPeak, math.Abs(low))
		midPeak = math.Max(midPeak, math.Abs(mid))
		highPeak = math.Max(highPeak, math.Abs(high))
	}

	if midPeak < 0.95 || midPeak > 1.05 {
		t.Errorf("mid peak = %v, want ~1", midPeak)
	}
	if lowPeak > 0.05 {
		t.Errorf("low peak = %v, want ~0", lowPeak)
	}
	if highPeak > 0.06 {
		t.Errorf("high peak = %v, want ~0", highPeak)
	}
}

func TestThreeBand_ProcessBlockMatchesSample(t *testing.T) {
	cfg := DefaultThreeBandConfig()

	ref, err := NewThreeBand(cfg, 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}
	blk, err := NewThreeBand(cfg, 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	input := make([]float64, 256)
	for i := range input {
		input[i] = math.Sin(0.1 * float64(i))
	}

	wantLow := make([]float64, len(input))
	wantMid := make([]float64, len(input))
	wantHigh := make([]float64, len(input))
	for i, x := range input {
		wantLow[i], wantMid[i], wantHigh[i] = ref.ProcessSample(x)
	}

	low := make([]float64, len(input))
	mid := make([]float64, len(input))
	high := make([]float64, len(input))
	blk.ProcessBlock(input, low, mid, high)

	for i := range input {
		if math.Abs(low[i]-wantLow[i]) > 1e-12 ||
			math.Abs(mid[i]-wantMid[i]) > 1e-12 ||
			math.Abs(high[i]-wantHigh[i]) > 1e-12 {
			t.Fatalf("sample %d: block output diverges from per-sample output", i)
		}
	}
}

func TestThreeBand_Reset(t *testing.T) {
	tb, err := NewThreeBand(DefaultThreeBandConfig(), 44100)
	if err != nil {
		t.Fatalf("NewThreeBand: %v", err)
	}

	tb.ProcessSample(1)
	tb.Reset()

	// After reset, zero input yields exactly zero output.
	low, mid, high := tb.ProcessSample(0)
	if low != 0 || mid != 0 || high != 0 {
		t.Errorf("outputs after reset = (%v, %v, %v), want zeros", low, mid, high)
	}
}
