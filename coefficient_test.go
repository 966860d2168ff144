package sci

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestPow10(t *testing.T) {
	for i := 1; i < len(pow10); i++ {
		if pow10[i] != pow10[i-1]*10 {
			t.Errorf("pow10[%v] = %v, want %v", i, pow10[i], pow10[i-1]*10)
		}
	}
}

func TestFracDigits(t *testing.T) {
	tests := []struct {
		coef string
		want int
	}{
		{"0", 0},
		{"0.000", 0},
		{"5", 0},
		{"5.0", 0},
		{"5.10", 2},
		{"-0.0000000000000000001", 19},
	}
	for _, tt := range tests {
		coef := decimal.MustParse(tt.coef)
		got := fracDigits(coef)
		if got != tt.want {
			t.Errorf("fracDigits(%v) = %v, want %v", coef, got, tt.want)
		}
	}
}

func TestShift(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			coef string
			k    int
			want string
		}{
			{"1.5", 0, "1.5"},
			{"1.5", 3, "1500"},
			{"0.00", 1, "0.0"},
			{"0", 40, "0"},
			{"0.0000000000000000001", 19, "1"},
			{"999999999.9999999999", 10, "9999999999999999999"},
			{"1.5", -3, "0.0015"},
			{"12.34", -2, "0.1234"},
			{"1", -19, "0.0000000000000000001"},
			{"0", -5, "0.00000"},
			{"-1200", -2, "-12.00"},
		}
		for _, tt := range tests {
			coef := decimal.MustParse(tt.coef)
			got, err := shift(coef, tt.k)
			if err != nil {
				t.Errorf("shift(%v, %v) failed: %v", coef, tt.k, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if got != want {
				t.Errorf("shift(%v, %v) = %v, want %v", coef, tt.k, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			coef string
			k    int
		}{
			{"1", 19},
			{"1", 39},
			{"1", 1000},
			{"9999999999999999999", 1},
			{"0.1", 20},
		}
		for _, tt := range tests {
			coef := decimal.MustParse(tt.coef)
			_, err := shift(coef, tt.k)
			if err == nil {
				t.Errorf("shift(%v, %v) did not fail", coef, tt.k)
			}
		}
	})
}

func TestCompact(t *testing.T) {
	tests := []struct {
		coef     string
		exp      int
		wantCoef string
		wantExp  int
	}{
		{"0", 3, "0", 3},
		{"7", 1, "7", 1},
		{"12.5", 0, "12.5", 0},
		{"1200", 2, "12", 4},
		{"1200.00", 0, "12", 2},
		{"-100", -5, "-1", -3},
		{"5000000000000000000", 0, "5", 18},
	}
	for _, tt := range tests {
		coef := decimal.MustParse(tt.coef)
		gotCoef, gotExp := compact(coef, tt.exp)
		wantCoef := decimal.MustParse(tt.wantCoef)
		if gotCoef != wantCoef || gotExp != tt.wantExp {
			t.Errorf("compact(%v, %v) = [%v %v], want [%v %v]", coef, tt.exp, gotCoef, gotExp, wantCoef, tt.wantExp)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		coef    string
		wantDig string
		wantPos int
	}{
		{"5", "5", 0},
		{"-5", "5", 0},
		{"315.2", "3152", 2},
		{"1200", "12", 3},
		{"0.0120", "12", -2},
		{"0.0000000000000000001", "1", -19},
		{"9999999999999999999", "9999999999999999999", 18},
	}
	for _, tt := range tests {
		coef := decimal.MustParse(tt.coef)
		gotDig, gotPos := digits(coef)
		if gotDig != tt.wantDig || gotPos != tt.wantPos {
			t.Errorf("digits(%v) = [%q %v], want [%q %v]", coef, gotDig, gotPos, tt.wantDig, tt.wantPos)
		}
	}
}

func TestRoundHalfDown(t *testing.T) {
	tests := []struct {
		coef  string
		scale int
		want  string
	}{
		{"2.45", 5, "2.45"},
		{"2.45", 2, "2.45"},
		{"2.45", 1, "2.4"},
		{"-2.45", 1, "-2.4"},
		{"2.451", 1, "2.5"},
		{"0.05", 1, "0.0"},
		{"0.051", 1, "0.1"},
		{"-9.96", 1, "-10.0"},
		{"-0.5", 0, "0"},
		{"9999999999999999.999", 0, "10000000000000000"},
	}
	for _, tt := range tests {
		coef := decimal.MustParse(tt.coef)
		got := roundHalfDown(coef, tt.scale)
		want := decimal.MustParse(tt.want)
		if got != want {
			t.Errorf("roundHalfDown(%v, %v) = %v, want %v", coef, tt.scale, got, want)
		}
	}
}

func TestFormatCoef(t *testing.T) {
	tests := []struct {
		coef  string
		scale int
		want  string
	}{
		{"0", 0, "0"},
		{"0", 2, "0.00"},
		{"1", 2, "1.00"},
		{"1.5", 3, "1.500"},
		{"2.45", 1, "2.4"},
		{"-0.5", 0, "0"},
		{"62.78964", 3, "62.790"},
		{"5.0", 0, "5"},
	}
	for _, tt := range tests {
		coef := decimal.MustParse(tt.coef)
		got := formatCoef(coef, tt.scale)
		if got != tt.want {
			t.Errorf("formatCoef(%v, %v) = %q, want %q", coef, tt.scale, got, tt.want)
		}
	}
}

func TestScanLiteral(t *testing.T) {
	tests := []struct {
		s         string
		wantScale int
		wantOk    bool
	}{
		{"123", 0, true},
		{"-1.25", 2, true},
		{"+.5", 1, true},
		{"5.", 0, true},
		{"0.000", 3, true},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"+-1", 0, false},
		{"1e5", 0, false},
		{"1.2.3", 0, false},
		{" 1", 0, false},
		{"1_000", 0, false},
	}
	for _, tt := range tests {
		gotScale, gotOk := scanLiteral(tt.s)
		if gotScale != tt.wantScale || gotOk != tt.wantOk {
			t.Errorf("scanLiteral(%q) = [%v %v], want [%v %v]", tt.s, gotScale, gotOk, tt.wantScale, tt.wantOk)
		}
	}
}

func TestHasFrac(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"23", false},
		{"23.", false},
		{"23.0", false},
		{"-23.000", false},
		{"23.4", true},
		{"-0.001", true},
	}
	for _, tt := range tests {
		got := hasFrac(tt.s)
		if got != tt.want {
			t.Errorf("hasFrac(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestLsh_Overflow(t *testing.T) {
	_, err := lsh(decimal.MustNew(1, 0), 100)
	if !errors.Is(err, errCoefficientOverflow) {
		t.Errorf("lsh(1, 100) error = %v, want %v", err, errCoefficientOverflow)
	}
}
