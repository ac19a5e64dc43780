package hashing

import (
	"fmt"
	"io"

	"github.com/gestaozabele/hashsvc/internal/phc"
)

const (
	// DefaultSaltLength é o tamanho do salt gerado quando o chamador não envia um.
	DefaultSaltLength = 16

	minSaltChars = 4
	maxSaltChars = 64
)

// decodeSalt interpreta o salt enviado pelo chamador em B64 sem padding.
func decodeSalt(encoded string, minBytes int) ([]byte, error) {
	switch {
	case len(encoded) < minSaltChars:
		return nil, invalidf("salt", "salt deve ter pelo menos %d caracteres", minSaltChars)
	case len(encoded) > maxSaltChars:
		return nil, invalidf("salt", "salt deve ter no máximo %d caracteres", maxSaltChars)
	}

	salt, err := phc.DecodeB64(encoded)
	if err != nil {
		return nil, &ValidationError{Field: "salt", Message: "salt não é base64 válido (alfabeto padrão, sem padding)", Err: err}
	}
	if len(salt) < minBytes {
		return nil, invalidf("salt", "salt deve ter pelo menos %d bytes", minBytes)
	}
	return salt, nil
}

// generateSalt lê DefaultSaltLength bytes da fonte aleatória.
func generateSalt(random io.Reader) ([]byte, error) {
	salt := make([]byte, DefaultSaltLength)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, &ComputeError{Op: "salt", Err: fmt.Errorf("falha ao gerar salt: %w", err)}
	}
	return salt, nil
}
