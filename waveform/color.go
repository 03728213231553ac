package waveform

import (
	"math"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

// RGB maps the band values to color channels (low→red, mid→green,
// high→blue) at full brightness.
func (v FilteredVal) RGB() (r, g, b float64) {
	return v.RGBScaled(1)
}

// RGBAll maps the band values to color channels with brightness limited
// by the full-range value.
func (v FilteredVal) RGBAll() (r, g, b float64) {
	return v.RGBScaled(v.All.Float())
}

// RGBScaled maps the band values to color channels normalized by
// max(ceiling, low, mid, high). The ceiling controls brightness: without
// it the color would always sit on an edge of the RGB cube with one
// component maxed out. A zero denominator yields pure black.
func (v FilteredVal) RGBScaled(ceiling float64) (r, g, b float64) {
	low := v.Low.Float()
	mid := v.Mid.Float()
	high := v.High.Float()

	denom := math.Max(math.Max(ceiling, low), math.Max(mid, high))
	if denom == 0 {
		return 0, 0, 0
	}

	return low / denom, mid / denom, high / denom
}

// Desaturate scales the HSV saturation of an RGB color by amount in
// [0, 1]. Amount 1 leaves the color unchanged; amount 0 collapses it to
// the gray of equal brightness. Hue and value are preserved.
func Desaturate(r, g, b, amount float64) (float64, float64, float64) {
	h, s, v := rgbToHSV(r, g, b)
	return hsvToRGB(h, s*amount, v)
}

// DesaturatedEnergyRGB maps the bin's energy values to an RGB color and
// desaturates it in proportion to the spectral flatness: flat (noisy)
// spectra fade toward gray, tonal spectra keep full chroma.
// flatnessToSaturation in [0, 1] controls how strongly flatness drives
// the desaturation; 0 disables it.
func (b *FilteredBin) DesaturatedEnergyRGB(flatnessToSaturation float64) (float64, float64, float64) {
	red, green, blue := b.Energy().RGBAll()

	amount := core.ClampUnit(1 - b.SpectralFlatness()*flatnessToSaturation)
	return Desaturate(red, green, blue, amount)
}

// rgbToHSV converts RGB in [0,1] to hue (degrees in [0,360)), saturation
// and value in [0,1].
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}
	if delta == 0 {
		return 0, s, v
	}

	switch maxC {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, v
}

// hsvToRGB converts hue (degrees), saturation and value back to RGB.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}
