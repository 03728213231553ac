package weighting

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
)

// IEC 61672 analog prototype pole frequencies (Hz).
const (
	f1 = 20.598997 // double pole, A and C
	f2 = 107.65265 // single pole, A only
	f4 = 737.86223 // single pole, A only
	f5 = 12194.217 // double pole, A and C
)

// Type identifies a frequency weighting curve applied ahead of analysis.
type Type int

const (
	// TypeZ applies no weighting (unity gain at all frequencies).
	TypeZ Type = iota

	// TypeA is the A-weighting curve per IEC 61672, approximating the
	// 40-phon equal-loudness contour.
	TypeA

	// TypeC is the C-weighting curve per IEC 61672, approximating the
	// 100-phon equal-loudness contour.
	TypeC
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeZ:
		return "Z"
	case TypeA:
		return "A"
	case TypeC:
		return "C"
	default:
		return "Unknown"
	}
}

// New returns a [biquad.Chain] realizing the given weighting curve at the
// specified sample rate, normalized to 0 dB at 1 kHz.
func New(t Type, sampleRate float64) (*biquad.Chain, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("weighting: sample rate must be > 0: %f", sampleRate)
	}

	switch t {
	case TypeZ:
		return biquad.NewChain([]biquad.Coefficients{{B0: 1}}), nil
	case TypeA:
		return newAWeighting(sampleRate), nil
	case TypeC:
		return newCWeighting(sampleRate), nil
	default:
		return nil, fmt.Errorf("weighting: unknown type %d", t)
	}
}

// newAWeighting builds the 6th-order A curve. The analog prototype
//
//	H_A(s) = K * s^4 / ((s+w1)^2 (s+w2) (s+w4) (s+w5)^2)
//
// maps to a 2nd-order highpass at f1, first-order highpasses at f2 and
// f4, and two first-order lowpasses at f5.
func newAWeighting(sr float64) *biquad.Chain {
	coeffs := []biquad.Coefficients{
		hpDoublePole(f1, sr),
		lpSinglePole(f5, sr),
		lpSinglePole(f5, sr),
		hpSinglePole(f2, sr),
		hpSinglePole(f4, sr),
	}

	return biquad.NewChain(coeffs, biquad.WithGain(referenceGain(coeffs, sr)))
}

// newCWeighting builds the 4th-order C curve:
//
//	H_C(s) = K * s^2 / ((s+w1)^2 (s+w5)^2)
func newCWeighting(sr float64) *biquad.Chain {
	coeffs := []biquad.Coefficients{
		hpDoublePole(f1, sr),
		lpSinglePole(f5, sr),
		lpSinglePole(f5, sr),
	}

	return biquad.NewChain(coeffs, biquad.WithGain(referenceGain(coeffs, sr)))
}

// lpSinglePole maps the analog prototype H(s) = w/(s+w) through the
// bilinear transform with K = tan(pi*f/sr).
func lpSinglePole(f, sr float64) biquad.Coefficients {
	k := math.Tan(math.Pi * f / sr)
	d := 1 + k

	return biquad.Coefficients{
		B0: k / d,
		B1: k / d,
		A1: (k - 1) / d,
	}
}

// hpSinglePole maps the analog prototype H(s) = s/(s+w).
func hpSinglePole(f, sr float64) biquad.Coefficients {
	k := math.Tan(math.Pi * f / sr)
	d := 1 + k

	return biquad.Coefficients{
		B0: 1 / d,
		B1: -1 / d,
		A1: (k - 1) / d,
	}
}

// hpDoublePole maps the analog prototype H(s) = s^2/(s+w)^2, a double
// real pole at f.
func hpDoublePole(f, sr float64) biquad.Coefficients {
	k := math.Tan(math.Pi * f / sr)
	k2 := k * k
	d := 1 + 2*k + k2

	return biquad.Coefficients{
		B0: 1 / d,
		B1: -2 / d,
		B2: 1 / d,
		A1: 2 * (k2 - 1) / d,
		A2: (1 - 2*k + k2) / d,
	}
}

// referenceGain returns the scale that pins the cascade magnitude to
// unity at 1 kHz.
func referenceGain(coeffs []biquad.Coefficients, sr float64) float64 {
	h := complex(1, 0)
	for i := range coeffs {
		h *= coeffs[i].Response(1000, sr)
	}

	return 1 / cmplx.Abs(h)
}
