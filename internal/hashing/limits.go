package hashing

// Limits impõe tetos do servidor sobre os parâmetros de custo. Zero desativa o
// teto correspondente, aceitando o risco de parâmetros escolhidos pelo chamador.
type Limits struct {
	MaxMemoryKiB   uint32
	MaxIterations  uint32
	MaxParallelism uint32
	MaxScryptCost  uint8
	MaxHashLength  uint32
}

// DefaultLimits devolve os tetos usados quando a configuração não informa outros.
func DefaultLimits() Limits {
	return Limits{
		MaxMemoryKiB:   1024 * 1024, // 1 GiB
		MaxIterations:  64,
		MaxParallelism: 64,
		MaxScryptCost:  24,
		MaxHashLength:  1024,
	}
}

func (l Limits) checkMemory(field string, kib uint64) error {
	if l.MaxMemoryKiB > 0 && kib > uint64(l.MaxMemoryKiB) {
		return invalidf(field, "memória de %d KiB excede o limite de %d KiB", kib, l.MaxMemoryKiB)
	}
	return nil
}

func (l Limits) checkIterations(t uint32) error {
	if l.MaxIterations > 0 && t > l.MaxIterations {
		return invalidf("iterations", "iterações excedem o limite de %d", l.MaxIterations)
	}
	return nil
}

func (l Limits) checkParallelism(p uint32) error {
	if l.MaxParallelism > 0 && p > l.MaxParallelism {
		return invalidf("parallelism", "paralelismo excede o limite de %d", l.MaxParallelism)
	}
	return nil
}

func (l Limits) checkScryptCost(logN uint8) error {
	if l.MaxScryptCost > 0 && logN > l.MaxScryptCost {
		return invalidf("cost", "custo excede o limite de %d", l.MaxScryptCost)
	}
	return nil
}

func (l Limits) checkHashLength(n uint32) error {
	if l.MaxHashLength > 0 && n > l.MaxHashLength {
		return invalidf("hash_length", "tamanho do hash excede o limite de %d bytes", l.MaxHashLength)
	}
	return nil
}
