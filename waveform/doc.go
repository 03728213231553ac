// Package waveform reduces a mono audio stream into compact per-time-bin
// summaries of loudness and spectral balance, suitable for rendering a
// color-coded waveform overview.
//
// An [Analyzer] splits each incoming sample into low, mid, and high bands
// with an overlapping three-band crossover, accumulates per-band peak and
// RMS energy over a configurable window, and emits one [FilteredBin] per
// window. Bin values are quantized to 8 bits ([Val]); derived metrics
// (spectral flatness, RGB color mapping) are pure functions of finished
// bins.
//
// The per-sample hot path performs no allocation. An Analyzer is not safe
// for concurrent use; run one instance per channel or stream.
package waveform
