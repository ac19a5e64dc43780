package kdf

import "golang.org/x/crypto/argon2"

// maxLibraryThreads é o maior paralelismo aceito por golang.org/x/crypto/argon2 (uint8).
const maxLibraryThreads = 255

// libraryCovers informa se golang.org/x/crypto/argon2 calcula a combinação.
func libraryCovers(variant Variant, version Version, threads uint32) bool {
	return version == Version13 && variant != Argon2d && threads >= 1 && threads <= maxLibraryThreads
}

// DeriveArgon2 usa golang.org/x/crypto/argon2 para Argon2i e Argon2id na
// revisão 0x13 com até 255 lanes. Argon2d, a revisão 0x10 e paralelismo
// maior caem no núcleo local (Argon2Key).
func DeriveArgon2(variant Variant, version Version, password, salt []byte, time, memory, threads, keyLen uint32) []byte {
	if libraryCovers(variant, version, threads) {
		if variant == Argon2id {
			return argon2.IDKey(password, salt, time, memory, uint8(threads), keyLen)
		}
		return argon2.Key(password, salt, time, memory, uint8(threads), keyLen)
	}
	return Argon2Key(variant, version, password, salt, nil, nil, time, memory, threads, keyLen)
}
