package units

import (
	"errors"
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{1.47, 1.45},
		{1.48, 1.5},
		{1.5, 1.5},
		{1.98, 2},
		{2.125, 2.15}, // exact tie rounds up
		{0.01, 0},
		{-1.47, -1.45},
		{-0.875, -0.85},
		{-0.01, 0},
		{-2, -2},
		{1e308, 1e308},
		{-1e300, -1e300},
		{1 << 53, 1 << 53},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertHugeStaysFinite(t *testing.T) {
	v := 1e307
	got, err := Convert(RemToPxDir, 16, v)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.IsInf(got, 0) || got != v*16 {
		t.Errorf("Convert(rem2px, 16, 1e307) = %v, want %v", got, v*16)
	}
}

func TestRoundNonFinite(t *testing.T) {
	if got := Round(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %v, want NaN", got)
	}
	if got := Round(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %v, want +Inf", got)
	}
}

func TestRoundSnapsToIncrement(t *testing.T) {
	for i := -20; i <= 20; i++ {
		for k := 0; k < 1000; k++ {
			v := float64(i) + float64(k)/1000
			got := Round(v)
			if d := math.Abs(got - v); d > 0.025+1e-9 {
				t.Fatalf("Round(%v) = %v, off by %v", v, got, d)
			}
			steps := got * RoundingPrecision
			if math.Abs(steps-math.Round(steps)) > 1e-9 {
				t.Fatalf("Round(%v) = %v, not a multiple of 0.05", v, got)
			}
		}
	}
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64, float64) float64
		v    float64
		base float64
		want float64
	}{
		{"px 16", PxToRem, 16, 16, 1},
		{"px 24", PxToRem, 24, 16, 1.5},
		{"px 8", PxToRem, 8, 16, 0.5},
		{"px 13", PxToRem, 13, 16, 0.8},
		{"px 20 base 10", PxToRem, 20, 10, 2},
		{"rem 1", RemToPx, 1, 16, 16},
		{"rem 1.5", RemToPx, 1.5, 16, 24},
		{"rem 0.33", RemToPx, 0.33, 16, 5.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.v, tt.base); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, base := range []float64{1, 8, 10.5, 16, 20} {
		tol := 0.025 + 0.025/base + 1e-9
		for k := 0; k <= 400; k++ {
			r := float64(k) / 40
			got := PxToRem(RemToPx(r, base), base)
			if math.Abs(got-r) > tol {
				t.Errorf("base %v: PxToRem(RemToPx(%v)) = %v, want within %v", base, r, got, tol)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(PxToRemDir, 16, 24)
	if err != nil || got != 1.5 {
		t.Errorf("Convert(px2rem, 16, 24) = %v, %v; want 1.5, nil", got, err)
	}
	got, err = Convert(RemToPxDir, 16, 2)
	if err != nil || got != 32 {
		t.Errorf("Convert(rem2px, 16, 2) = %v, %v; want 32, nil", got, err)
	}
	if _, err := Convert(PxToRemDir, 16, math.NaN()); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Convert(NaN) error = %v, want ErrNotANumber", err)
	}
	if _, err := Convert(PxToRemDir, 16, math.Inf(-1)); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Convert(-Inf) error = %v, want ErrNotANumber", err)
	}
	if _, err := Convert(PxToRemDir, 0, 16); !errors.Is(err, ErrInvalidBaseSize) {
		t.Errorf("Convert(base 0) error = %v, want ErrInvalidBaseSize", err)
	}
}

func TestSetBaseSize(t *testing.T) {
	for _, c := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		got, err := SetBaseSize(16, c)
		if got != 16 {
			t.Errorf("SetBaseSize(16, %v) = %v, want 16", c, got)
		}
		if !errors.Is(err, ErrInvalidBaseSize) {
			t.Errorf("SetBaseSize(16, %v) error = %v, want ErrInvalidBaseSize", c, err)
		}
	}
	got, err := SetBaseSize(16, 10)
	if err != nil || got != 10 {
		t.Errorf("SetBaseSize(16, 10) = %v, %v; want 10, nil", got, err)
	}
}

func TestParseBaseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{" 18px", 18, false},
		{"abc", 16, true},
		{"-4", 16, true},
		{"0", 16, true},
		{"", 16, true},
	}
	for _, tt := range tests {
		got, err := ParseBaseSize(16, tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseBaseSize(16, %q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidBaseSize) {
			t.Errorf("ParseBaseSize(16, %q) error = %v, want ErrInvalidBaseSize", tt.in, err)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"16", 16, false},
		{"16px", 16, false},
		{"  1.5rem", 1.5, false},
		{".5", 0.5, false},
		{"5.", 5, false},
		{"-3", -3, false},
		{"+2.25", 2.25, false},
		{"1e2", 100, false},
		{"1.2.3", 1.2, false},
		{"1e", 1, false},
		{".", 0, true},
		{"px", 0, true},
		{"", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseValue(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrNotANumber) {
				t.Errorf("ParseValue(%q) error = %v, want ErrNotANumber", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	d := PxToRemDir
	if d.InputUnit() != "px" || d.OutputUnit() != "rem" {
		t.Errorf("px2rem units = %s/%s", d.InputUnit(), d.OutputUnit())
	}
	d = d.Toggle()
	if d != RemToPxDir || d.InputUnit() != "rem" || d.OutputUnit() != "px" {
		t.Errorf("toggled direction = %v (%s/%s)", d, d.InputUnit(), d.OutputUnit())
	}
	for _, s := range []string{"px2rem", "rem2px"} {
		got, err := ParseDirection(s)
		if err != nil || got.String() != s {
			t.Errorf("ParseDirection(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseDirection("em"); err == nil {
		t.Error("ParseDirection(em) should fail")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		1:     "1",
		1.5:   "1.5",
		0.05:  "0.05",
		1.45:  "1.45",
		-0.85: "-0.85",
		1024:  "1024",
		1e20:  "100000000000000000000",
		1e21:  "1e+21",
		-1e21: "-1e+21",
		1e30:  "1e+30",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
