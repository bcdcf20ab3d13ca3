package units

import (
	"fmt"
	"regexp"
	"strings"
)

// batchToken is deliberately loose: runs of digits and dots, so "1.2.3" is one
// token that ParseValue reads as 1.2, and a lone "." is skipped.
var batchToken = regexp.MustCompile(`[0-9.]+`)

// Line is one converted batch entry.
type Line struct {
	Input      float64
	InputUnit  string
	Output     float64
	OutputUnit string
}

func (l Line) String() string {
	return fmt.Sprintf("%s%s → %s%s", FormatNumber(l.Input), l.InputUnit, FormatNumber(l.Output), l.OutputUnit)
}

// BatchConvert converts every number found in text, in order of appearance.
// Blank text gives an empty result; text without any usable number gives
// ErrNoValidNumbers.
func BatchConvert(dir Direction, base float64, text string) ([]Line, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !validBase(base) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseSize, base)
	}
	var lines []Line
	for _, tok := range batchToken.FindAllString(text, -1) {
		v, err := ParseValue(tok)
		if err != nil {
			continue
		}
		out, err := Convert(dir, base, v)
		if err != nil {
			continue
		}
		lines = append(lines, Line{
			Input:      v,
			InputUnit:  dir.InputUnit(),
			Output:     out,
			OutputUnit: dir.OutputUnit(),
		})
	}
	if len(lines) == 0 {
		return nil, ErrNoValidNumbers
	}
	return lines, nil
}

// JoinLines renders lines one per row.
func JoinLines(lines []Line) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}
