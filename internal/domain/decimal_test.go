package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestDecimalArithmetic(t *testing.T) {
	a := NewDecimalInt(100)
	b := NewDecimalInt(35)

	if got := a.Add(b); !got.Eq(NewDecimalInt(135)) {
		t.Errorf("100+35 = %s, want 135", got)
	}
	if got := a.Sub(b); !got.Eq(NewDecimalInt(65)) {
		t.Errorf("100-35 = %s, want 65", got)
	}
	if got := a.Mul(b); !got.Eq(NewDecimalInt(3500)) {
		t.Errorf("100*35 = %s, want 3500", got)
	}
	if got := a.DivFloat(4); !got.Eq(NewDecimalInt(25)) {
		t.Errorf("100/4 = %s, want 25", got)
	}

	// Вычитание ниже нуля валидно (урон минус защита)
	if got := b.Sub(a); got.Sign() >= 0 {
		t.Errorf("35-100 should be negative, got %s", got)
	}
}

// Формулы кривых роста должны давать точные целые значения,
// на них завязаны уровни лампы и игрока.
func TestDecimalGrowthCurves(t *testing.T) {
	cases := []struct {
		base  float64
		mult  float64
		pow   float64
		power float64
		want  int64
	}{
		{10, 1, 1.2, 1, 12},    // лампа: floor(10*1.2^1)
		{100, 1, 1.5, 2, 225},  // игрок: floor(100*1.5^2)
		{15, 2.5, 1.1, 0, 37},  // предмет: floor(15*2.5*1.1^0)
		{30, 1, 1.2, 1, 36},    // враг HP stage 2
		{30, 1, 1.2, 0, 30},    // враг HP stage 1
		{2, 1, 1.15, 0, 2},     // враг Attack stage 1
		{10, 1, 1.1, 0, 10},    // награда золотом stage 1
	}

	for _, c := range cases {
		got := NewDecimal(c.base).MulFloat(c.mult).Mul(PowFloat(c.pow, c.power)).Floor()
		if !got.Eq(NewDecimalInt(c.want)) {
			t.Errorf("floor(%v*%v*%v^%v) = %s, want %d", c.base, c.mult, c.pow, c.power, got, c.want)
		}
	}
}

func TestDecimalLargeMagnitudes(t *testing.T) {
	// За пределами float64: 1e400 * 1e10 = 1e410
	big := PowFloat(10, 400)
	if got := big.Mul(PowFloat(10, 10)); math.Abs(got.Log10()-410) > 1e-9 {
		t.Errorf("1e400*1e10: log10 = %v, want 410", got.Log10())
	}

	// Меньшее слагаемое за пределами точности не меняет большее
	if got := big.Add(NewDecimalInt(1)); !got.Eq(big) {
		t.Errorf("1e400+1 should stay 1e400, got %s", got)
	}

	// Сравнения работают через порядки
	if !big.Gt(NewDecimal(math.MaxFloat64)) {
		t.Error("1e400 should be greater than MaxFloat64")
	}
}

func TestDecimalComparisons(t *testing.T) {
	a := NewDecimal(99.5)
	b := NewDecimalInt(100)

	if !a.Lt(b) || !b.Gt(a) || a.Gte(b) || b.Lte(a) {
		t.Error("99.5 vs 100 comparison mismatch")
	}
	if !a.Eq(NewDecimal(99.5)) {
		t.Error("99.5 should equal itself")
	}
	if got := a.Max(b); !got.Eq(b) {
		t.Errorf("max(99.5,100) = %s", got)
	}
	if got := a.Min(b); !got.Eq(a) {
		t.Errorf("min(99.5,100) = %s", got)
	}
}

func TestDecimalAbbrev(t *testing.T) {
	cases := []struct {
		in   Decimal
		want string
	}{
		{DecimalZero, "0"},
		{NewDecimal(0.5), "0.50"},
		{NewDecimalInt(999), "999"},
		{NewDecimal(999.4), "999"},
		{NewDecimal(999.5), "1.0K"},
		{NewDecimalInt(1500), "1.5K"},
		{NewDecimalInt(2_500_000), "2.5M"},
		{NewDecimal(3.2e9), "3.2B"},
		{NewDecimal(1e12), "1.0T"},
		{NewDecimal(4.56e15), "4.6Qa"},
		{NewDecimal(1e33), "1.0Dc"},
	}

	for _, c := range cases {
		if got := c.in.Abbrev(); got != c.want {
			t.Errorf("Abbrev(%s) = %q, want %q", c.in, got, c.want)
		}
	}

	// За пределами суффиксов - экспонента
	if got := PowFloat(10, 40).Abbrev(); got != "1.00e40" {
		t.Errorf("Abbrev(1e40) = %q, want 1.00e40", got)
	}
}

func TestDecimalSerializationRoundTrip(t *testing.T) {
	values := []Decimal{
		DecimalZero,
		NewDecimalInt(42),
		NewDecimal(1234.5),
		PowFloat(10, 500).MulFloat(2.35),
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", v, err)
		}

		var back Decimal
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !back.Eq(v) {
			t.Errorf("round trip %s -> %s -> %s", v, data, back)
		}
	}

	// Старые сохранения могли писать голое число
	var d Decimal
	if err := json.Unmarshal([]byte(`125.5`), &d); err != nil {
		t.Fatalf("unmarshal raw number: %v", err)
	}
	if !d.Eq(NewDecimal(125.5)) {
		t.Errorf("raw number revived as %s", d)
	}
}

func TestParseDecimalMalformed(t *testing.T) {
	for _, s := range []string{"", "abc", "1.2.3", "e5"} {
		if _, err := ParseDecimal(s); err == nil {
			t.Errorf("ParseDecimal(%q) should fail", s)
		}
	}
}
