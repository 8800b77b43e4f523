package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests from a pool of reusable hash
// instances. A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
//
//	h := utils.NewHasher("my-secret-key")
//	header := h.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the hex-encoded HMAC-SHA256 digest of data.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether sumHex is the digest of data, in constant time.
func (h *Hasher) Verify(data []byte, sumHex string) bool {
	expected, err := hex.DecodeString(sumHex)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), expected)
}
