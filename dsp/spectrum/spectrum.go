package spectrum

import (
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-waveform/dsp/window"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real
// and imaginary parts in separate slices. All three slices must have the
// same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// FromSignal computes the single-sided magnitude spectrum of a real signal.
//
// The signal is multiplied by the given window, zero-padded to fftSize, and
// transformed with a forward FFT. The returned slice holds fftSize/2+1
// magnitudes covering DC through Nyquist. fftSize must be a power of two
// and at least len(signal).
func FromSignal(signal []float64, fftSize int, win window.Type) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("spectrum: empty signal")
	}
	if fftSize < len(signal) {
		return nil, fmt.Errorf("spectrum: fft size %d smaller than signal length %d", fftSize, len(signal))
	}
	if fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("spectrum: fft size %d is not a power of two", fftSize)
	}

	coeffs := window.Generate(win, len(signal), window.WithPeriodic())
	windowed, err := window.ApplyCoefficients(signal, coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	return Magnitude(out[:fftSize/2+1]), nil
}

// BinFrequency returns the center frequency in Hz of FFT bin k for the
// given transform size and sample rate.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}
