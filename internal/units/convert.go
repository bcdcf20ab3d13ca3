package units

import (
	"fmt"
	"math"
	"strconv"
)

// Direction selects which way a conversion goes.
type Direction int

const (
	PxToRemDir Direction = iota
	RemToPxDir
)

func (d Direction) String() string {
	if d == RemToPxDir {
		return "rem2px"
	}
	return "px2rem"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == RemToPxDir {
		return PxToRemDir
	}
	return RemToPxDir
}

func (d Direction) InputUnit() string {
	if d == RemToPxDir {
		return "rem"
	}
	return "px"
}

func (d Direction) OutputUnit() string {
	if d == RemToPxDir {
		return "px"
	}
	return "rem"
}

// ParseDirection accepts "px2rem" or "rem2px" (and the px/rem shorthands).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "px2rem", "px", "":
		return PxToRemDir, nil
	case "rem2px", "rem":
		return RemToPxDir, nil
	}
	return PxToRemDir, fmt.Errorf("unknown direction %q (want px2rem or rem2px)", s)
}

func PxToRem(px, base float64) float64 {
	return Round(px / base)
}

func RemToPx(rem, base float64) float64 {
	return Round(rem * base)
}

// Convert applies the conversion for dir. The value must be finite and the
// base size a positive finite number.
func Convert(dir Direction, base, value float64) (float64, error) {
	if !finite(value) {
		return math.NaN(), fmt.Errorf("%w: %v", ErrNotANumber, value)
	}
	if !validBase(base) {
		return math.NaN(), fmt.Errorf("%w: %v", ErrInvalidBaseSize, base)
	}
	if dir == RemToPxDir {
		return RemToPx(value, base), nil
	}
	return PxToRem(value, base), nil
}

// SetBaseSize returns candidate when it is usable as a base size, otherwise
// current together with ErrInvalidBaseSize.
func SetBaseSize(current, candidate float64) (float64, error) {
	if !validBase(candidate) {
		return current, fmt.Errorf("%w: %v", ErrInvalidBaseSize, candidate)
	}
	return candidate, nil
}

// ParseBaseSize is SetBaseSize for text input. Unparseable text is reported
// as ErrInvalidBaseSize as well.
func ParseBaseSize(current float64, text string) (float64, error) {
	v, err := ParseValue(text)
	if err != nil {
		return current, fmt.Errorf("%w: %q", ErrInvalidBaseSize, text)
	}
	return SetBaseSize(current, v)
}

// FormatNumber prints v with the fewest digits that read back to the same value.
// From 1e21 on it switches to exponent form, as browsers do.
func FormatNumber(v float64) string {
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validBase(v float64) bool { return finite(v) && v > 0 }
