package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct seeds, got %d twice", a)
	}
}

func TestResolveSeed(t *testing.T) {
	fixed := int64(42)
	got, err := ResolveSeed(&fixed)
	if err != nil {
		t.Fatalf("resolve seed: %v", err)
	}
	if got != 42 {
		t.Fatalf("ResolveSeed(&42) = %d", got)
	}
	if _, err := ResolveSeed(nil); err != nil {
		t.Fatalf("resolve nil seed: %v", err)
	}
}
