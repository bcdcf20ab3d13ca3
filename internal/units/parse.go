package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches what a browser's parseFloat accepts at the start of a string.
var numberPrefix = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// ParseValue reads the leading number of s, so "16px" is 16 and "1.2.3" is 1.2.
// Leading whitespace is skipped; trailing text is ignored.
func ParseValue(s string) (float64, error) {
	lit := numberPrefix.FindString(strings.TrimLeft(s, " \t\r\n"))
	if lit == "" {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || !finite(v) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}
