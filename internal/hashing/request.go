package hashing

const (
	// DefaultAlgorithm é usado quando a requisição Argon2 omite algorithm.
	DefaultAlgorithm = "id"
	// DefaultVersion é usado quando a requisição Argon2 omite version.
	DefaultVersion = 19
)

// Argon2Request é o corpo recebido em POST /argon2.
type Argon2Request struct {
	Algorithm   string  `json:"algorithm"`
	Password    *string `json:"password"`
	Salt        *string `json:"salt"`
	Version     *int    `json:"version"`
	Parallelism uint32  `json:"parallelism"`
	Memory      uint32  `json:"memory"`
	Iterations  uint32  `json:"iterations"`
	HashLength  *uint32 `json:"hash_length"`
}

// ScryptRequest é o corpo recebido em POST /scrypt. Cost é log2(N).
type ScryptRequest struct {
	Password    *string `json:"password"`
	Salt        *string `json:"salt"`
	Cost        uint8   `json:"cost"`
	BlockSize   uint32  `json:"block_size"`
	Parallelism uint32  `json:"parallelism"`
	HashLength  *uint32 `json:"hash_length"`
}
