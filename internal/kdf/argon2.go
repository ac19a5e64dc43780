// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Derivado de golang.org/x/crypto/argon2 (argon2.go e blamka_generic.go),
// com suporte a Argon2d e à revisão 0x10.

package kdf

import (
	"encoding/binary"
	"errors"
	"hash"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Variant identifica o sabor do Argon2 (tipo y do RFC 9106).
type Variant uint32

const (
	Argon2d Variant = iota
	Argon2i
	Argon2id
)

// Version identifica a revisão da função de derivação.
type Version uint32

const (
	Version10 Version = 0x10
	Version13 Version = 0x13
)

var (
	// ErrUnknownVariant é retornado para tokens de algoritmo fora de i, d e id.
	ErrUnknownVariant = errors.New("algoritmo argon2 desconhecido")
	// ErrUnknownVersion é retornado para versões diferentes de 16 e 19.
	ErrUnknownVersion = errors.New("versão argon2 desconhecida")
)

const (
	blockLength = 128
	syncPoints  = 4
)

type block [blockLength]uint64

func (v Variant) String() string {
	switch v {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	}
	return "argon2?"
}

// ParseVariant aceita os tokens curtos (d, i, id) e os nomes completos.
func ParseVariant(token string) (Variant, error) {
	switch strings.TrimPrefix(token, "argon2") {
	case "d":
		return Argon2d, nil
	case "i":
		return Argon2i, nil
	case "id":
		return Argon2id, nil
	}
	return 0, ErrUnknownVariant
}

// ParseVersion mapeia 16 e 19 para as revisões conhecidas.
func ParseVersion(v int) (Version, error) {
	switch Version(v) {
	case Version10, Version13:
		return Version(v), nil
	}
	return 0, ErrUnknownVersion
}

// Argon2Key deriva uma chave conforme o RFC 9106.
//
// Diferente de golang.org/x/crypto/argon2, cobre também Argon2d e a revisão
// 0x10. Os parâmetros devem chegar validados: time e threads iguais a zero
// causam panic.
func Argon2Key(variant Variant, version Version, password, salt, secret, data []byte, time, memory, threads, keyLen uint32) []byte {
	if time < 1 {
		panic("kdf: argon2 time deve ser maior que zero")
	}
	if threads < 1 {
		panic("kdf: argon2 threads deve ser maior que zero")
	}
	h0 := initHash(variant, version, password, salt, secret, data, time, memory, threads, keyLen)

	memory = memory / (syncPoints * threads) * (syncPoints * threads)
	if memory < 2*syncPoints*threads {
		memory = 2 * syncPoints * threads
	}
	B := initBlocks(&h0, memory, threads)
	processBlocks(B, variant, version, time, memory, threads)
	return extractKey(B, memory, threads, keyLen)
}

func initHash(variant Variant, version Version, password, salt, secret, data []byte, time, memory, threads, keyLen uint32) [blake2b.Size + 8]byte {
	var (
		h0     [blake2b.Size + 8]byte
		params [24]byte
		tmp    [4]byte
	)

	b2, _ := blake2b.New512(nil)
	binary.LittleEndian.PutUint32(params[0:4], threads)
	binary.LittleEndian.PutUint32(params[4:8], keyLen)
	binary.LittleEndian.PutUint32(params[8:12], memory)
	binary.LittleEndian.PutUint32(params[12:16], time)
	binary.LittleEndian.PutUint32(params[16:20], uint32(version))
	binary.LittleEndian.PutUint32(params[20:24], uint32(variant))
	b2.Write(params[:])
	for _, field := range [][]byte{password, salt, secret, data} {
		binary.LittleEndian.PutUint32(tmp[:], uint32(len(field)))
		b2.Write(tmp[:])
		b2.Write(field)
	}
	b2.Sum(h0[:0])
	return h0
}

func initBlocks(h0 *[blake2b.Size + 8]byte, memory, threads uint32) []block {
	var block0 [1024]byte
	B := make([]block, memory)
	for lane := uint32(0); lane < threads; lane++ {
		j := lane * (memory / threads)
		binary.LittleEndian.PutUint32(h0[blake2b.Size+4:], lane)

		for k := uint32(0); k < 2; k++ {
			binary.LittleEndian.PutUint32(h0[blake2b.Size:], k)
			hashVariable(block0[:], h0[:])
			for i := range B[j+k] {
				B[j+k][i] = binary.LittleEndian.Uint64(block0[i*8:])
			}
		}
	}
	return B
}

func processBlocks(B []block, variant Variant, version Version, time, memory, threads uint32) {
	lanes := memory / threads
	segments := lanes / syncPoints

	// Na revisão 0x10 os blocos são sobrescritos em todas as passagens.
	xor := version == Version13

	processSegment := func(n, slice, lane uint32, wg *sync.WaitGroup) {
		defer wg.Done()

		var addresses, in, zero block
		independent := variant == Argon2i || (variant == Argon2id && n == 0 && slice < syncPoints/2)
		if independent {
			in[0] = uint64(n)
			in[1] = uint64(lane)
			in[2] = uint64(slice)
			in[3] = uint64(memory)
			in[4] = uint64(time)
			in[5] = uint64(variant)
		}

		index := uint32(0)
		if n == 0 && slice == 0 {
			index = 2
			if independent {
				in[6]++
				processBlock(&addresses, &in, &zero, false)
				processBlock(&addresses, &addresses, &zero, false)
			}
		}

		offset := lane*lanes + slice*segments + index
		var random uint64
		for index < segments {
			prev := offset - 1
			if index == 0 && slice == 0 {
				prev += lanes
			}
			if independent {
				if index%blockLength == 0 {
					in[6]++
					processBlock(&addresses, &in, &zero, false)
					processBlock(&addresses, &addresses, &zero, false)
				}
				random = addresses[index%blockLength]
			} else {
				random = B[prev][0]
			}
			ref := indexAlpha(random, lanes, segments, threads, n, slice, lane, index)
			processBlock(&B[offset], &B[prev], &B[ref], xor && n > 0)
			index, offset = index+1, offset+1
		}
	}

	for n := uint32(0); n < time; n++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < threads; lane++ {
				wg.Add(1)
				go processSegment(n, slice, lane, &wg)
			}
			wg.Wait()
		}
	}
}

func extractKey(B []block, memory, threads, keyLen uint32) []byte {
	lanes := memory / threads
	for lane := uint32(0); lane < threads-1; lane++ {
		for i, v := range B[(lane*lanes)+lanes-1] {
			B[memory-1][i] ^= v
		}
	}

	var last [1024]byte
	for i, v := range B[memory-1] {
		binary.LittleEndian.PutUint64(last[i*8:], v)
	}
	key := make([]byte, keyLen)
	hashVariable(key, last[:])
	return key
}

func indexAlpha(rand uint64, lanes, segments, threads, n, slice, lane, index uint32) uint32 {
	refLane := uint32(rand>>32) % threads
	if n == 0 && slice == 0 {
		refLane = lane
	}
	m, s := 3*segments, ((slice+1)%syncPoints)*segments
	if lane == refLane {
		m += index
	}
	if n == 0 {
		m, s = slice*segments, 0
		if slice == 0 || lane == refLane {
			m += index
		}
	}
	if index == 0 || lane == refLane {
		m--
	}
	return phi(rand, uint64(m), uint64(s), refLane, lanes)
}

func phi(rand, m, s uint64, lane, lanes uint32) uint32 {
	p := rand & 0xFFFFFFFF
	p = (p * p) >> 32
	p = (p * m) >> 32
	return lane*lanes + uint32((s+m-(p+1))%uint64(lanes))
}

// hashVariable implementa H' (RFC 9106 §3.3), BLAKE2b de tamanho variável.
func hashVariable(out []byte, in []byte) {
	var b2 hash.Hash
	if n := len(out); n < blake2b.Size {
		b2, _ = blake2b.New(n, nil)
	} else {
		b2, _ = blake2b.New512(nil)
	}

	var buffer [blake2b.Size]byte
	binary.LittleEndian.PutUint32(buffer[:4], uint32(len(out)))
	b2.Write(buffer[:4])
	b2.Write(in)

	if len(out) <= blake2b.Size {
		b2.Sum(out[:0])
		return
	}

	outLen := len(out)
	b2.Sum(buffer[:0])
	b2.Reset()
	copy(out, buffer[:32])
	out = out[32:]
	for len(out) > blake2b.Size {
		b2.Write(buffer[:])
		b2.Sum(buffer[:0])
		copy(out, buffer[:32])
		out = out[32:]
		b2.Reset()
	}

	if outLen%blake2b.Size > 0 {
		r := ((outLen + 31) / 32) - 2
		b2, _ = blake2b.New(outLen-32*r, nil)
	}
	b2.Write(buffer[:])
	b2.Sum(out[:0])
}
