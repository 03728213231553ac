// Package weighting provides IEC 61672 frequency weighting filters
// (A, C, Z) realized as biquad cascades.
//
// In this module a weighting chain is typically installed as the
// analyzer's input shaper so that bin loudness reflects perceived rather
// than raw level.
package weighting
