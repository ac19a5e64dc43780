package kdf

import (
	"bytes"
	"encoding/hex"
	"testing"

	xargon2 "golang.org/x/crypto/argon2"
)

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestArgon2KeyRFC9106Vectors(t *testing.T) {
	password := repeat(0x01, 32)
	salt := repeat(0x02, 16)
	secret := repeat(0x03, 8)
	data := repeat(0x04, 12)

	tests := []struct {
		variant Variant
		want    string
	}{
		{Argon2d, "512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb"},
		{Argon2i, "c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8"},
		{Argon2id, "0d640df58d78766c08c037a34a8b53c9d01ef0452d75b65eb52520e96b01e659"},
	}

	for _, tc := range tests {
		t.Run(tc.variant.String(), func(t *testing.T) {
			got := Argon2Key(tc.variant, Version13, password, salt, secret, data, 3, 32, 4, 32)
			if hex.EncodeToString(got) != tc.want {
				t.Fatalf("expected %s got %x", tc.want, got)
			}
		})
	}
}

func TestArgon2KeyVersion10(t *testing.T) {
	got := Argon2Key(Argon2i, Version10, []byte("password"), []byte("somesalt"), nil, nil, 2, 1<<16, 1, 32)
	want := "f6c4db4a54e2a370627aff3db6176b94a2a209a62c8e36152711802f7b30c694"
	if hex.EncodeToString(got) != want {
		t.Fatalf("expected %s got %x", want, got)
	}
}

func TestArgon2KeyMatchesXCrypto(t *testing.T) {
	tests := []struct {
		name    string
		time    uint32
		memory  uint32
		threads uint8
		keyLen  uint32
	}{
		{"minimo", 1, 8, 1, 4},
		{"padrao", 2, 256, 1, 32},
		{"multi-lane", 3, 300, 4, 32},
		{"chave-longa", 1, 64, 2, 100},
		{"chave-128", 1, 64, 1, 128},
	}

	password := []byte("correct horse")
	salt := []byte("saltsaltsaltsalt")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotI := Argon2Key(Argon2i, Version13, password, salt, nil, nil, tc.time, tc.memory, uint32(tc.threads), tc.keyLen)
			wantI := xargon2.Key(password, salt, tc.time, tc.memory, tc.threads, tc.keyLen)
			if !bytes.Equal(gotI, wantI) {
				t.Fatalf("argon2i: expected %x got %x", wantI, gotI)
			}

			gotID := Argon2Key(Argon2id, Version13, password, salt, nil, nil, tc.time, tc.memory, uint32(tc.threads), tc.keyLen)
			wantID := xargon2.IDKey(password, salt, tc.time, tc.memory, tc.threads, tc.keyLen)
			if !bytes.Equal(gotID, wantID) {
				t.Fatalf("argon2id: expected %x got %x", wantID, gotID)
			}
		})
	}
}

func TestArgon2KeyVariantsDiffer(t *testing.T) {
	password := []byte("p")
	salt := []byte("somesalt")

	d := Argon2Key(Argon2d, Version13, password, salt, nil, nil, 1, 64, 1, 32)
	d10 := Argon2Key(Argon2d, Version10, password, salt, nil, nil, 1, 64, 1, 32)
	d10twice := Argon2Key(Argon2d, Version10, password, salt, nil, nil, 2, 64, 1, 32)
	d13twice := Argon2Key(Argon2d, Version13, password, salt, nil, nil, 2, 64, 1, 32)

	if bytes.Equal(d, d10) {
		t.Fatal("expected version to change the derived key")
	}
	if bytes.Equal(d10twice, d13twice) {
		t.Fatal("expected 0x10 and 0x13 to diverge after the first pass")
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		token   string
		want    Variant
		wantErr bool
	}{
		{"i", Argon2i, false},
		{"d", Argon2d, false},
		{"id", Argon2id, false},
		{"argon2id", Argon2id, false},
		{"x", 0, true},
		{"", 0, true},
		{"ID", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseVariant(tc.token)
		if tc.wantErr {
			if err != ErrUnknownVariant {
				t.Fatalf("%q: expected ErrUnknownVariant got %v", tc.token, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: expected %v got %v (%v)", tc.token, tc.want, got, err)
		}
	}
}

func TestParseVersion(t *testing.T) {
	for _, v := range []int{16, 19} {
		got, err := ParseVersion(v)
		if err != nil || int(got) != v {
			t.Fatalf("%d: expected ok got %v (%v)", v, got, err)
		}
	}
	for _, v := range []int{0, 17, 18, 20, 0x130, -19} {
		if _, err := ParseVersion(v); err != ErrUnknownVersion {
			t.Fatalf("%d: expected ErrUnknownVersion got %v", v, err)
		}
	}
}
