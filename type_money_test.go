package bondplan

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		// whole-unit display with the locale conventions of the currency
		{EUR(9800), "€9.800"},
		{USD(9800), "$9,800"},
		{GBP(1250000), "£1,250,000"},
		{M(9800, "CHF"), "9.800 CHF"},
		{M(1234567, "JPY"), "¥1,234,567"},
		{EUR(5000.49), "€5.000"},
		{EUR(0), "€0"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := EUR(9800)
	b := EUR(5000)

	if got := a.Sub(b); !got.Equal(EUR(4800)) {
		t.Errorf("Sub() = %v, want 4800", got)
	}
	if got := a.Add(b); !got.Equal(EUR(14800)) {
		t.Errorf("Add() = %v, want 14800", got)
	}
	if !a.GreaterThanOrEqual(b) {
		t.Errorf("GreaterThanOrEqual() = false, want true")
	}
	if got := b.MulFloat(1.5); !got.Equal(EUR(7500)) {
		t.Errorf("MulFloat(1.5) = %v, want 7500", got)
	}

	// the "" currency is weak: it adopts the other operand's currency
	if got := M(0, "").Add(b); got.Currency() != "EUR" {
		t.Errorf("weak currency Add: got currency %q, want EUR", got.Currency())
	}
}

func TestMoneyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("adding EUR and USD should panic")
		}
	}()
	EUR(1).Add(USD(1))
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(EUR(9800))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"amount":9800,"currency":"EUR"}` {
		t.Errorf("Marshal() = %s", b)
	}
	var back Money
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(EUR(9800)) {
		t.Errorf("roundtrip = %v, want €9.800", back)
	}
}
