package kdf

import "golang.org/x/crypto/scrypt"

// ScryptKey deriva a chave scrypt com N = 2^logN.
func ScryptKey(password, salt []byte, logN uint8, r, p, keyLen int) ([]byte, error) {
	return scrypt.Key(password, salt, 1<<logN, r, p, keyLen)
}
