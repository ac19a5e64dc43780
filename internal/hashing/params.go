package hashing

import (
	"errors"
	"math"
	"strconv"

	"github.com/gestaozabele/hashsvc/internal/kdf"
	"github.com/gestaozabele/hashsvc/internal/phc"
)

const (
	argon2MinMemory      = 8
	argon2MaxParallelism = 0xFFFFFF
	argon2MinKeyLength   = 4
	argon2MinSaltBytes   = 8

	scryptMinKeyLength = 10
	scryptMaxKeyLength = 64

	// DefaultKeyLength é o tamanho de saída quando hash_length é omitido.
	DefaultKeyLength = 32
)

var errZeroParams = errors.New("parâmetros não inicializados")

// Params é a união fechada dos conjuntos de parâmetros suportados. Só
// Argon2Params e ScryptParams a implementam, e ambos só são obtidos pelos
// construtores validados.
type Params interface {
	Algorithm() string
	derive(password, salt []byte) ([]byte, error)
	encode(salt, digest []byte) phc.Hash
	minSaltBytes() int
}

// Argon2Params reúne variante, revisão e custos de uma derivação Argon2.
type Argon2Params struct {
	variant     kdf.Variant
	version     kdf.Version
	memory      uint32
	iterations  uint32
	parallelism uint32
	keyLength   uint32
}

// NewArgon2Params valida os custos conforme as regras da primitiva e os
// limites do servidor. Valores fora da faixa são rejeitados, nunca ajustados.
func NewArgon2Params(variant kdf.Variant, version kdf.Version, memory, iterations, parallelism uint32, keyLength *uint32, limits Limits) (Argon2Params, error) {
	keyLen := uint32(DefaultKeyLength)
	if keyLength != nil {
		keyLen = *keyLength
	}

	switch {
	case parallelism < 1:
		return Argon2Params{}, invalid("parallelism", "paralelismo deve ser pelo menos 1")
	case parallelism > argon2MaxParallelism:
		return Argon2Params{}, invalidf("parallelism", "paralelismo deve ser no máximo %d", argon2MaxParallelism)
	case memory < argon2MinMemory:
		return Argon2Params{}, invalidf("memory", "memória deve ser pelo menos %d KiB", argon2MinMemory)
	case uint64(memory) < 8*uint64(parallelism):
		return Argon2Params{}, invalid("memory", "memória deve ser pelo menos 8 KiB por lane de paralelismo")
	case iterations < 1:
		return Argon2Params{}, invalid("iterations", "iterações devem ser pelo menos 1")
	case keyLen < argon2MinKeyLength:
		return Argon2Params{}, invalidf("hash_length", "tamanho do hash deve ser pelo menos %d bytes", argon2MinKeyLength)
	}

	if err := limits.checkMemory("memory", uint64(memory)); err != nil {
		return Argon2Params{}, err
	}
	if err := limits.checkIterations(iterations); err != nil {
		return Argon2Params{}, err
	}
	if err := limits.checkParallelism(parallelism); err != nil {
		return Argon2Params{}, err
	}
	if err := limits.checkHashLength(keyLen); err != nil {
		return Argon2Params{}, err
	}

	return Argon2Params{
		variant:     variant,
		version:     version,
		memory:      memory,
		iterations:  iterations,
		parallelism: parallelism,
		keyLength:   keyLen,
	}, nil
}

func (p Argon2Params) Algorithm() string    { return p.variant.String() }
func (p Argon2Params) Variant() kdf.Variant { return p.variant }
func (p Argon2Params) Version() kdf.Version { return p.version }
func (p Argon2Params) Memory() uint32       { return p.memory }
func (p Argon2Params) Iterations() uint32   { return p.iterations }
func (p Argon2Params) Parallelism() uint32  { return p.parallelism }
func (p Argon2Params) KeyLength() uint32    { return p.keyLength }
func (p Argon2Params) minSaltBytes() int    { return argon2MinSaltBytes }

func (p Argon2Params) derive(password, salt []byte) ([]byte, error) {
	if p.iterations == 0 || p.parallelism == 0 {
		return nil, errZeroParams
	}
	return kdf.DeriveArgon2(p.variant, p.version, password, salt, p.iterations, p.memory, p.parallelism, p.keyLength), nil
}

func (p Argon2Params) encode(salt, digest []byte) phc.Hash {
	return phc.Hash{
		ID:      p.variant.String(),
		Version: int(p.version),
		Params: []phc.Param{
			{Key: "m", Value: strconv.FormatUint(uint64(p.memory), 10)},
			{Key: "t", Value: strconv.FormatUint(uint64(p.iterations), 10)},
			{Key: "p", Value: strconv.FormatUint(uint64(p.parallelism), 10)},
		},
		Salt:   salt,
		Digest: digest,
	}
}

// ScryptParams reúne log2(N), tamanho de bloco e paralelismo do scrypt.
type ScryptParams struct {
	logN        uint8
	blockSize   uint32
	parallelism uint32
	keyLength   uint32
}

// NewScryptParams valida a relação entre custo, bloco e paralelismo.
func NewScryptParams(logN uint8, blockSize, parallelism uint32, keyLength *uint32, limits Limits) (ScryptParams, error) {
	keyLen := uint32(DefaultKeyLength)
	if keyLength != nil {
		keyLen = *keyLength
	}

	switch {
	case logN < 1 || logN > 63:
		return ScryptParams{}, invalid("cost", "cost deve estar entre 1 e 63")
	case blockSize < 1:
		return ScryptParams{}, invalid("block_size", "block_size deve ser pelo menos 1")
	case parallelism < 1:
		return ScryptParams{}, invalid("parallelism", "paralelismo deve ser pelo menos 1")
	case keyLen < scryptMinKeyLength || keyLen > scryptMaxKeyLength:
		return ScryptParams{}, invalidf("hash_length", "tamanho do hash deve estar entre %d e %d bytes", scryptMinKeyLength, scryptMaxKeyLength)
	case uint64(logN) >= 16*uint64(blockSize):
		return ScryptParams{}, invalid("cost", "cost deve ser menor que 16 × block_size")
	case uint64(blockSize)*uint64(parallelism) >= 1<<30:
		return ScryptParams{}, invalid("parallelism", "block_size × parallelism deve ser menor que 2^30")
	}

	n := uint64(1) << logN
	r, p := uint64(blockSize), uint64(parallelism)
	maxInt := uint64(math.MaxInt)
	if r > maxInt/128/p || r > maxInt/256 || n > maxInt/128/r {
		return ScryptParams{}, invalid("cost", "parâmetros scrypt grandes demais")
	}

	if err := limits.checkScryptCost(logN); err != nil {
		return ScryptParams{}, err
	}
	if err := limits.checkMemory("cost", 128*r*n/1024); err != nil {
		return ScryptParams{}, err
	}
	if err := limits.checkParallelism(parallelism); err != nil {
		return ScryptParams{}, err
	}
	if err := limits.checkHashLength(keyLen); err != nil {
		return ScryptParams{}, err
	}

	return ScryptParams{
		logN:        logN,
		blockSize:   blockSize,
		parallelism: parallelism,
		keyLength:   keyLen,
	}, nil
}

func (p ScryptParams) Algorithm() string   { return "scrypt" }
func (p ScryptParams) LogN() uint8         { return p.logN }
func (p ScryptParams) BlockSize() uint32   { return p.blockSize }
func (p ScryptParams) Parallelism() uint32 { return p.parallelism }
func (p ScryptParams) KeyLength() uint32   { return p.keyLength }
func (p ScryptParams) minSaltBytes() int   { return 0 }

func (p ScryptParams) derive(password, salt []byte) ([]byte, error) {
	if p.logN == 0 {
		return nil, errZeroParams
	}
	return kdf.ScryptKey(password, salt, p.logN, int(p.blockSize), int(p.parallelism), int(p.keyLength))
}

func (p ScryptParams) encode(salt, digest []byte) phc.Hash {
	return phc.Hash{
		ID: "scrypt",
		Params: []phc.Param{
			{Key: "ln", Value: strconv.Itoa(int(p.logN))},
			{Key: "r", Value: strconv.FormatUint(uint64(p.blockSize), 10)},
			{Key: "p", Value: strconv.FormatUint(uint64(p.parallelism), 10)},
		},
		Salt:   salt,
		Digest: digest,
	}
}
