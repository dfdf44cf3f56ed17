package dot

import (
	"math"
	"testing"
)

func TestIntUnqt(t *testing.T) {
	if got := Render(Int(-3).Unqt()); got != "-3" {
		t.Errorf("Int(-3) rendered %q", got)
	}
}

func TestDoubleFinal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4.0, "4"}, // integral values drop the decimal point
		{-4.0, "-4"},
		{0, "0"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
		{1e-10, `"1e-10"`}, // exponent forms are not bare literals
		{3e20, `"3e+20"`},
	}
	for _, tt := range tests {
		if got := Render(Double(tt.in).Final()); got != tt.want {
			t.Errorf("Double(%v).Final() rendered %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDoubleUnqtKeepsExponentBare(t *testing.T) {
	if got := Render(Double(1e-10).Unqt()); got != "1e-10" {
		t.Errorf("Unqt rendered %q, want bare exponent form", got)
	}
}

func TestDoubleHugeIntegral(t *testing.T) {
	// Beyond 2^53 the integral shortcut must not fire.
	got := Render(Double(1e300).Final())
	if got != `"1e+300"` {
		t.Errorf("Double(1e300).Final() rendered %q", got)
	}
}

func TestDoubleNaNAndInf(t *testing.T) {
	// Not representable in the grammar, but the formatter must still be
	// total and deterministic.
	for _, f := range []float64{math.NaN(), math.Inf(1)} {
		if got := Render(Double(f).Unqt()); got == "" {
			t.Errorf("Double(%v) rendered empty", f)
		}
	}
}

func TestDoubleListFinal(t *testing.T) {
	l := DoubleList{1.0, 2.5, 3.0}
	if got := Render(l.Final()); got != `"1:2.5:3"` {
		t.Errorf("DoubleList.Final() rendered %q, want %q", got, `"1:2.5:3"`)
	}
}

func TestDoubleListUnqt(t *testing.T) {
	l := DoubleList{1.0, 2.5}
	if got := Render(l.Unqt()); got != "1:2.5" {
		t.Errorf("DoubleList.Unqt() rendered %q", got)
	}
}

func TestDoubleListSingleton(t *testing.T) {
	// A singleton degrades to the scalar final form.
	if got := Render(DoubleList{4.0}.Final()); got != "4" {
		t.Errorf("singleton rendered %q, want %q", got, "4")
	}
	// Including the scalar's own quoting rules.
	if got := Render(DoubleList{1e-10}.Final()); got != `"1e-10"` {
		t.Errorf("singleton exponent rendered %q, want %q", got, `"1e-10"`)
	}
}

func TestDoubleListEmpty(t *testing.T) {
	if got := Render(DoubleList(nil).Final()); got != `""` {
		t.Errorf("empty list rendered %q", got)
	}
}
