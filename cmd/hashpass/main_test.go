package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"

	"github.com/gestaozabele/hashsvc/internal/hashing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestArgon2Command(t *testing.T) {
	out, err := execute(t, "", "argon2", "--memory", "64", "--iterations", "1", "--parallelism", "1", "segredo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Fatalf("unexpected output %q", out)
	}
	ok, err := argon2id.ComparePasswordAndHash("segredo", out)
	if err != nil || !ok {
		t.Fatalf("hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestArgon2CommandStdinWithSalt(t *testing.T) {
	args := []string{"argon2", "--stdin", "--algorithm", "i", "--version", "16", "--memory", "64", "--iterations", "1", "--parallelism", "1", "--salt", "c29tZXNhbHQ"}
	first, err := execute(t, "segredo\n", args...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := execute(t, "segredo", args...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected trailing newline to be trimmed: %q vs %q", first, second)
	}
	if !strings.HasPrefix(first, "$argon2i$v=16$m=64,t=1,p=1$c29tZXNhbHQ$") {
		t.Fatalf("unexpected output %q", first)
	}
}

func TestScryptCommand(t *testing.T) {
	out, err := execute(t, "", "scrypt", "--cost", "10", "segredo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "$scrypt$ln=10,r=8,p=1$") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		validation bool
	}{
		{"sem-senha", "", []string{"scrypt"}, false},
		{"stdin-e-posicional", "x", []string{"scrypt", "--stdin", "segredo"}, false},
		{"stdin-vazio", "\n", []string{"scrypt", "--stdin"}, false},
		{"variante-invalida", "", []string{"argon2", "--algorithm", "x", "segredo"}, true},
		{"custo-invalido", "", []string{"scrypt", "--cost", "0", "segredo"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if hashing.IsValidation(err) != tc.validation {
				t.Fatalf("validation=%v for %v", hashing.IsValidation(err), err)
			}
		})
	}
}
