// Package phc codifica e interpreta strings no PHC string format:
//
//	$<id>[$v=<versão>]$<chave>=<valor>[,...]$<salt>$<hash>
//
// Salt e hash usam base64 padrão sem padding ("B64" do formato PHC).
package phc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat indica estrutura PHC inválida.
	ErrInvalidFormat = errors.New("phc: formato inválido")
	// ErrInvalidEncoding indica salt ou hash fora do base64 canônico.
	ErrInvalidEncoding = errors.New("phc: base64 inválido")
)

var b64 = base64.RawStdEncoding.Strict()

// Param é um par chave=valor na ordem em que aparece na string.
type Param struct {
	Key   string
	Value string
}

// Hash é a forma estruturada de uma string PHC. Version zero significa ausente.
type Hash struct {
	ID      string
	Version int
	Params  []Param
	Salt    []byte
	Digest  []byte
}

// EncodeB64 codifica bytes no alfabeto B64 do formato PHC.
func EncodeB64(b []byte) string {
	return b64.EncodeToString(b)
}

// DecodeB64 decodifica B64 rejeitando padding e bits finais não canônicos.
func DecodeB64(s string) ([]byte, error) {
	b, err := b64.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// String serializa o hash. Parse(h.String()) reproduz a mesma string.
func (h Hash) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	sb.WriteString(h.ID)
	if h.Version != 0 {
		sb.WriteString("$v=")
		sb.WriteString(strconv.Itoa(h.Version))
	}
	if len(h.Params) > 0 {
		sb.WriteByte('$')
		for i, p := range h.Params {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(p.Key)
			sb.WriteByte('=')
			sb.WriteString(p.Value)
		}
	}
	if h.Salt != nil {
		sb.WriteByte('$')
		sb.WriteString(EncodeB64(h.Salt))
		if h.Digest != nil {
			sb.WriteByte('$')
			sb.WriteString(EncodeB64(h.Digest))
		}
	}
	return sb.String()
}

// Param devolve o valor de uma chave.
func (h Hash) Param(key string) (string, bool) {
	for _, p := range h.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Uint devolve o valor numérico de uma chave.
func (h Hash) Uint(key string) (uint64, error) {
	raw, ok := h.Param(key)
	if !ok {
		return 0, fmt.Errorf("%w: parâmetro %s ausente", ErrInvalidFormat, key)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: parâmetro %s inválido", ErrInvalidFormat, key)
	}
	return v, nil
}

// Parse interpreta uma string PHC.
func Parse(s string) (Hash, error) {
	parts := strings.Split(s, "$")
	if len(parts) < 2 || parts[0] != "" {
		return Hash{}, ErrInvalidFormat
	}
	parts = parts[1:]

	var h Hash
	h.ID = parts[0]
	if !validID(h.ID) {
		return Hash{}, fmt.Errorf("%w: identificador %q", ErrInvalidFormat, h.ID)
	}
	parts = parts[1:]

	if len(parts) > 0 && strings.HasPrefix(parts[0], "v=") {
		v, err := strconv.Atoi(strings.TrimPrefix(parts[0], "v="))
		if err != nil || v <= 0 || strconv.Itoa(v) != strings.TrimPrefix(parts[0], "v=") {
			return Hash{}, fmt.Errorf("%w: versão", ErrInvalidFormat)
		}
		h.Version = v
		parts = parts[1:]
	}

	if len(parts) > 0 && strings.Contains(parts[0], "=") {
		params, err := parseParams(parts[0])
		if err != nil {
			return Hash{}, err
		}
		h.Params = params
		parts = parts[1:]
	}

	if len(parts) > 2 {
		return Hash{}, ErrInvalidFormat
	}
	if len(parts) > 0 {
		salt, err := DecodeB64(parts[0])
		if err != nil {
			return Hash{}, err
		}
		h.Salt = salt
	}
	if len(parts) > 1 {
		digest, err := DecodeB64(parts[1])
		if err != nil {
			return Hash{}, err
		}
		h.Digest = digest
	}
	return h, nil
}

func parseParams(field string) ([]Param, error) {
	pairs := strings.Split(field, ",")
	params := make([]Param, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || !validID(key) || value == "" {
			return nil, fmt.Errorf("%w: parâmetro %q", ErrInvalidFormat, pair)
		}
		params = append(params, Param{Key: key, Value: value})
	}
	return params, nil
}

func validID(id string) bool {
	if id == "" || len(id) > 32 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
