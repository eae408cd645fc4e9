package vellum

import "testing"

func TestHexParsesShortAndLongForms(t *testing.T) {
	short, ok := Hex("#0f0")
	if !ok || short != (Color{0, 0xff, 0, 0xff}) {
		t.Fatalf("short hex = %+v, %v", short, ok)
	}
	long, ok := Hex("00ff00")
	if !ok || long != short {
		t.Fatalf("long hex = %+v, want %+v", long, short)
	}
	if _, ok := Hex("#zzz"); ok {
		t.Fatal("expected malformed hex to fail")
	}
}

func TestParseColorNamedAndFunctional(t *testing.T) {
	if c, ok := ParseColor("white"); !ok || c != ColorWhite {
		t.Fatalf("named white = %+v, %v", c, ok)
	}
	c, ok := ParseColor("rgb(10, 20, 30)")
	if !ok || c != RGB(10, 20, 30) {
		t.Fatalf("rgb() = %+v, %v", c, ok)
	}
	if _, ok := ParseColor(""); ok {
		t.Fatal("expected empty string to fail")
	}
}

func TestColorIsZeroOnlyForTrueZeroValue(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Fatal("zero-value Color should be IsZero")
	}
	if RGB(0, 0, 0).IsZero() {
		t.Fatal("opaque black should not be IsZero (alpha=255)")
	}
}
