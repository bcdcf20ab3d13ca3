// Package units converts between px and rem lengths.
//
// Everything here is a pure function of its arguments. The UI layers keep the
// current direction and base size in a State and pass it in explicitly.
package units

import "math"

const (
	// DefaultBaseSize is the root font size browsers use when none is set.
	DefaultBaseSize = 16.0

	// RoundingPrecision is the number of steps per unit; 1/20 = 0.05.
	RoundingPrecision = 20
)

// Round snaps the fractional part of value to the nearest 0.05, keeping the
// integer part. The split uses floor, so for negative values the fraction is
// measured upward from the next lower integer: Round(-1.47) is -2 + 0.55.
func Round(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	// from 2^52 on every float is an integer, and scaling could overflow
	if math.Abs(value) >= 1<<52 {
		return value
	}
	i := math.Floor(value)
	steps := math.Round((value - i) * RoundingPrecision)
	// one division keeps the result at the double nearest to the decimal
	return (i*RoundingPrecision + steps) / RoundingPrecision
}
