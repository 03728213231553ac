package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns a human-readable name for the window type.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "Rectangular"
	case TypeHann:
		return "Hann"
	case TypeHamming:
		return "Hamming"
	case TypeBlackman:
		return "Blackman"
	default:
		return "Unknown"
	}
}

var errMismatchedLength = errors.New("window: samples and coefficients must have the same length")

// config holds options for Generate.
type config struct {
	periodic bool
}

// Option configures window generation.
type Option func(*config)

// WithPeriodic generates a periodic (DFT-even) window instead of the
// default symmetric one. Periodic windows are preferred for spectral
// analysis since the implied period matches the FFT length.
func WithPeriodic() Option {
	return func(cfg *config) { cfg.periodic = true }
}

// Generate returns length coefficients of the selected window type.
// Returns nil for length <= 0.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = evalWindow(t, x)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errors.New("window: empty coefficients")
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errors.New("window: zero coherent gain")
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// samplePosition maps sample index i to the normalized position x in [0, 1].
// Symmetric windows span exactly [0, 1]; periodic windows omit the final
// endpoint so the window tiles seamlessly over FFT frames.
func samplePosition(i, length int, periodic bool) float64 {
	denom := length - 1
	if periodic {
		denom = length
	}
	if denom <= 0 {
		return 0
	}

	return float64(i) / float64(denom)
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	case TypeRectangular:
		return 1
	default:
		return 1
	}
}
