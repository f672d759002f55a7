package serd

import (
	"math"
	"testing"
)

func TestNewDecimalCanonicalForm(t *testing.T) {
	n, err := NewDecimal(3.0, 0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Text() != "3.0" {
		t.Fatalf("expected canonical decimal 3.0, got %q", n.Text())
	}
}

func TestNewDecimalRejectsNonFinite(t *testing.T) {
	if _, err := NewDecimal(math.NaN(), 0, 0, nil); err != ErrNotFinite {
		t.Fatalf("expected ErrNotFinite, got %v", err)
	}
}

func TestNewDecimalZeroPreservesSign(t *testing.T) {
	n, err := NewDecimal(math.Copysign(0, -1), 0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Text() != "-0.0" {
		t.Fatalf("expected -0.0, got %q", n.Text())
	}
}

func TestNewDecimalBoundsSignificantDigits(t *testing.T) {
	n, err := NewDecimal(1.23456789, 3, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Text() != "1.23" {
		t.Fatalf("expected 3 significant digits 1.23, got %q", n.Text())
	}
}

func TestNewDoubleScientificForm(t *testing.T) {
	n := NewDouble(15000000000)
	if n.Text() != "1.5E10" {
		t.Fatalf("expected 1.5E10, got %q", n.Text())
	}
	if n.Datatype() == nil || n.Datatype().Text() != xsdDouble {
		t.Fatalf("expected xsd:double datatype, got %v", n.Datatype())
	}
}

func TestNewDoubleNonFiniteTokens(t *testing.T) {
	if NewDouble(math.Inf(1)).Text() != "INF" {
		t.Fatalf("expected INF token")
	}
	if NewDouble(math.Inf(-1)).Text() != "-INF" {
		t.Fatalf("expected -INF token")
	}
	if NewDouble(math.NaN()).Text() != "NaN" {
		t.Fatalf("expected NaN token")
	}
}

func TestBlobRoundTrip(t *testing.T) {
	data := []byte("hello, rdf")
	n := NewBlob(data, false, nil)
	got, err := DecodeBlob(n.Text())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("expected round-tripped bytes %q, got %q", data, got)
	}
}

func TestBlobWrapLinesInsertsBreaksAndFlagsNewline(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	n := NewBlob(data, true, nil)
	if n.Flags()&HasNewline == 0 {
		t.Fatalf("expected HasNewline flag on a wrapped blob literal")
	}
	got, err := DecodeBlob(n.Text())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(data) {
		t.Fatalf("expected %d decoded bytes, got %d", len(data), len(got))
	}
}

func TestDecodeBlobRejectsInvalidBase64(t *testing.T) {
	if _, err := DecodeBlob("not valid base64!!"); err == nil {
		t.Fatalf("expected error decoding invalid base64")
	}
}
