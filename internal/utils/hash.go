package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// Hasher computes HMAC-SHA256 digests of sync payloads under a single key.
// MAC instances are pooled, so one Hasher serves concurrent requests.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with key.
func NewHasher(key string) *Hasher {
	secret := []byte(key)
	h := &Hasher{}
	h.pool.New = func() any {
		return hmac.New(sha256.New, secret)
	}
	return h
}

// Sum returns the raw digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	defer h.pool.Put(mac)

	mac.Reset()
	mac.Write(data)
	return mac.Sum(nil)
}

// SumHex returns the lowercase hex digest of data, the form carried in the
// HashSHA256 header.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether received is the hex digest of data. Case and
// surrounding whitespace in received are ignored.
func (h *Hasher) Verify(data []byte, received string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(received))
	if err != nil {
		return false
	}
	return hmac.Equal(got, h.Sum(data))
}

// HashString is a one-off hex HMAC-SHA256 of data under hashKey.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
