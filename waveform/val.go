package waveform

// Val is an 8-bit fixed-point encoding of a value in [0, 1].
//
// Encoding scales by 256 and truncates; decoding divides by 255. The
// asymmetry is deliberate: code 0 decodes to exactly 0.0 and code 255 to
// exactly 1.0, and the code→float→code round trip is exact for every
// code. The float→code→float direction is not exact for arbitrary
// inputs.
type Val uint8

// MaxVal is the largest representable code, decoding to exactly 1.0.
const MaxVal Val = 255

// ValFromFloat quantizes x into an 8-bit code. Values above 1 saturate
// to [MaxVal]; x must not be negative (the caller guarantees this,
// negative inputs clamp to zero rather than wrapping).
func ValFromFloat(x float64) Val {
	mapped := x * 256
	switch {
	case mapped >= 255:
		return MaxVal
	case mapped > 0:
		return Val(mapped)
	default:
		return 0
	}
}

// Float decodes the quantized code back to [0, 1].
func (v Val) Float() float64 {
	return float64(v) / 255
}

// IsZero reports whether the code is exactly zero.
func (v Val) IsZero() bool {
	return v == 0
}
