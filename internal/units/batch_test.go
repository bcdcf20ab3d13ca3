package units

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBatchConvert(t *testing.T) {
	got, err := BatchConvert(PxToRemDir, 16, "16px 1.5rem 24")
	if err != nil {
		t.Fatalf("BatchConvert() error = %v", err)
	}
	want := []Line{
		{Input: 16, InputUnit: "px", Output: 1, OutputUnit: "rem"},
		{Input: 1.5, InputUnit: "px", Output: 0.1, OutputUnit: "rem"},
		{Input: 24, InputUnit: "px", Output: 1.5, OutputUnit: "rem"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BatchConvert() mismatch (-want +got):\n%s", diff)
	}
}

func TestBatchConvertRemToPx(t *testing.T) {
	got, err := BatchConvert(RemToPxDir, 16, "margin: 1rem 0.5rem;\npadding: 2rem")
	if err != nil {
		t.Fatalf("BatchConvert() error = %v", err)
	}
	want := "1rem → 16px\n0.5rem → 8px\n2rem → 32px"
	if diff := cmp.Diff(want, JoinLines(got)); diff != "" {
		t.Errorf("JoinLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestBatchConvertTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{"sign dropped", "-16px", []float64{16}},
		{"multiple dots", "1.2.3", []float64{1.2}},
		{"lone dots skipped", ". 8 ..", []float64{8}},
		{"leading dot", "width: .5rem", []float64{0.5}},
		{"glued", "12px/16px", []float64{12, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := BatchConvert(PxToRemDir, 16, tt.text)
			if err != nil {
				t.Fatalf("BatchConvert(%q) error = %v", tt.text, err)
			}
			var got []float64
			for _, l := range lines {
				got = append(got, l.Input)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("inputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBatchConvertNoNumbers(t *testing.T) {
	for _, text := range []string{"no digits here", "...", "px rem"} {
		lines, err := BatchConvert(PxToRemDir, 16, text)
		if !errors.Is(err, ErrNoValidNumbers) {
			t.Errorf("BatchConvert(%q) error = %v, want ErrNoValidNumbers", text, err)
		}
		if lines != nil {
			t.Errorf("BatchConvert(%q) = %v, want nil", text, lines)
		}
	}
}

func TestBatchConvertBlank(t *testing.T) {
	lines, err := BatchConvert(PxToRemDir, 16, "  \n\t ")
	if err != nil || len(lines) != 0 {
		t.Errorf("BatchConvert(blank) = %v, %v; want empty, nil", lines, err)
	}
}

func TestBatchConvertInvalidBase(t *testing.T) {
	if _, err := BatchConvert(PxToRemDir, -2, "16"); !errors.Is(err, ErrInvalidBaseSize) {
		t.Errorf("BatchConvert(base -2) error = %v, want ErrInvalidBaseSize", err)
	}
}

func TestLineString(t *testing.T) {
	l := Line{Input: 24, InputUnit: "px", Output: 1.5, OutputUnit: "rem"}
	if got, want := l.String(), "24px → 1.5rem"; got != want {
		t.Errorf("Line.String() = %q, want %q", got, want)
	}
}

func TestState(t *testing.T) {
	s := NewState()
	if s.Direction != PxToRemDir || s.BaseSize != DefaultBaseSize {
		t.Fatalf("NewState() = %+v", s)
	}
	if err := s.SetBaseSize(-1); !errors.Is(err, ErrInvalidBaseSize) {
		t.Errorf("SetBaseSize(-1) error = %v", err)
	}
	if s.BaseSize != 16 {
		t.Errorf("BaseSize after invalid update = %v, want 16", s.BaseSize)
	}
	if err := s.ParseBaseSize("20"); err != nil {
		t.Fatalf("ParseBaseSize(20) error = %v", err)
	}
	s.Toggle()
	got, err := s.Convert(1.5)
	if err != nil || got != 30 {
		t.Errorf("Convert(1.5) = %v, %v; want 30, nil", got, err)
	}
	if s.InputUnit() != "rem" || s.OutputUnit() != "px" {
		t.Errorf("units = %s/%s, want rem/px", s.InputUnit(), s.OutputUnit())
	}
}
