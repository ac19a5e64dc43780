// Package hashing traduz parâmetros não confiáveis em chamadas seguras às
// funções de derivação e produz a string PHC resultante.
//
// Cada chamada é de passagem única: valida, escolhe o salt, deriva e codifica.
// O Hasher não guarda estado mutável e pode ser usado concorrentemente.
package hashing

import (
	"crypto/rand"
	"errors"
	"io"
	"time"

	"github.com/gestaozabele/hashsvc/internal/kdf"
	"github.com/gestaozabele/hashsvc/internal/phc"
)

// Hasher executa as derivações com uma fonte aleatória e limites fixos.
type Hasher struct {
	random io.Reader
	limits Limits
}

// Option configura um Hasher.
type Option func(*Hasher)

// WithRandom troca a fonte de salts (útil para testes determinísticos).
func WithRandom(r io.Reader) Option {
	return func(h *Hasher) {
		if r != nil {
			h.random = r
		}
	}
}

// WithLimits define os tetos de custo aceitos.
func WithLimits(l Limits) Option {
	return func(h *Hasher) {
		h.limits = l
	}
}

// New cria um Hasher com crypto/rand e DefaultLimits.
func New(opts ...Option) *Hasher {
	h := &Hasher{
		random: rand.Reader,
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Limits devolve os tetos em uso.
func (h *Hasher) Limits() Limits {
	return h.limits
}

// Result é o artefato de uma derivação.
type Result struct {
	Encoded   string
	Algorithm string
	Duration  time.Duration
}

// HashArgon2 valida a requisição Argon2 e calcula o hash.
func (h *Hasher) HashArgon2(req Argon2Request) (Result, error) {
	if req.Password == nil {
		return Result{}, invalid("password", "senha obrigatória")
	}

	token := req.Algorithm
	if token == "" {
		token = DefaultAlgorithm
	}
	variant, err := kdf.ParseVariant(token)
	if err != nil {
		return Result{}, &ValidationError{Field: "algorithm", Message: "algoritmo inválido", Err: err}
	}

	rawVersion := DefaultVersion
	if req.Version != nil {
		rawVersion = *req.Version
	}
	version, err := kdf.ParseVersion(rawVersion)
	if err != nil {
		return Result{}, &ValidationError{Field: "version", Message: "versão inválida", Err: err}
	}

	params, err := NewArgon2Params(variant, version, req.Memory, req.Iterations, req.Parallelism, req.HashLength, h.limits)
	if err != nil {
		return Result{}, err
	}
	return h.Hash(params, []byte(*req.Password), req.Salt)
}

// HashScrypt valida a requisição scrypt e calcula o hash.
func (h *Hasher) HashScrypt(req ScryptRequest) (Result, error) {
	if req.Password == nil {
		return Result{}, invalid("password", "senha obrigatória")
	}

	params, err := NewScryptParams(req.Cost, req.BlockSize, req.Parallelism, req.HashLength, h.limits)
	if err != nil {
		return Result{}, err
	}
	return h.Hash(params, []byte(*req.Password), req.Salt)
}

// Hash escolhe o salt (decodificado de encodedSalt ou gerado), deriva a chave
// e devolve a string PHC. A string é relida antes de ser devolvida.
func (h *Hasher) Hash(params Params, password []byte, encodedSalt *string) (Result, error) {
	if params == nil {
		return Result{}, &ComputeError{Op: "params", Err: errZeroParams}
	}

	var (
		salt []byte
		err  error
	)
	if encodedSalt != nil {
		salt, err = decodeSalt(*encodedSalt, params.minSaltBytes())
	} else {
		salt, err = generateSalt(h.random)
	}
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	digest, err := params.derive(password, salt)
	if err != nil {
		return Result{}, &ComputeError{Op: "derive", Err: err}
	}
	elapsed := time.Since(start)

	encoded := params.encode(salt, digest).String()
	parsed, err := phc.Parse(encoded)
	if err != nil {
		return Result{}, &ComputeError{Op: "encode", Err: err}
	}
	if parsed.String() != encoded {
		return Result{}, &ComputeError{Op: "encode", Err: errors.New("string PHC não é estável")}
	}

	return Result{
		Encoded:   encoded,
		Algorithm: params.Algorithm(),
		Duration:  elapsed,
	}, nil
}
