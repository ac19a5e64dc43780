package kdf

import (
	"bytes"
	"testing"
)

func TestLibraryCovers(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		version Version
		threads uint32
		want    bool
	}{
		{"id-v19", Argon2id, Version13, 1, true},
		{"i-v19", Argon2i, Version13, 4, true},
		{"id-v19-255-lanes", Argon2id, Version13, 255, true},
		{"id-v19-256-lanes", Argon2id, Version13, 256, false},
		{"d-v19", Argon2d, Version13, 1, false},
		{"id-v16", Argon2id, Version10, 1, false},
		{"i-v16", Argon2i, Version10, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := libraryCovers(tc.variant, tc.version, tc.threads); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestDeriveArgon2MatchesCore(t *testing.T) {
	password, salt := []byte("password"), []byte("somesalt")

	tests := []struct {
		name    string
		variant Variant
		version Version
		memory  uint32
		threads uint32
	}{
		{"id-v19", Argon2id, Version13, 64, 1},
		{"i-v19", Argon2i, Version13, 64, 2},
		{"d-v19", Argon2d, Version13, 64, 1},
		{"id-v16", Argon2id, Version10, 64, 1},
		{"id-v19-256-lanes", Argon2id, Version13, 2048, 256},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveArgon2(tc.variant, tc.version, password, salt, 1, tc.memory, tc.threads, 32)
			want := Argon2Key(tc.variant, tc.version, password, salt, nil, nil, 1, tc.memory, tc.threads, 32)
			if !bytes.Equal(got, want) {
				t.Fatalf("derived key differs from core:\n got %x\nwant %x", got, want)
			}
		})
	}
}
