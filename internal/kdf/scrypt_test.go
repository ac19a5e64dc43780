package kdf

import (
	"encoding/hex"
	"testing"
)

// Vetor do RFC 7914 §12 (N=16, r=1, p=1).
func TestScryptKeyRFC7914(t *testing.T) {
	got, err := ScryptKey(nil, nil, 4, 1, 1, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "77d6576238657b203b19ca42c18a0497f16b4844e3074ae8dfdffa3fede21442" +
		"fcd0069ded0948f8326a753a0fc81f17e8d3e0fb2e0d3628cf35e20c38d18906"
	if hex.EncodeToString(got) != want {
		t.Fatalf("expected %s got %x", want, got)
	}
}

func TestScryptKeyRejectsInvalidN(t *testing.T) {
	if _, err := ScryptKey([]byte("p"), []byte("salt"), 0, 8, 1, 32); err == nil {
		t.Fatal("expected error for N=1")
	}
}
