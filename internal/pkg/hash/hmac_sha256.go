package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrEmptyKey is returned when an HMAC is requested without key material.
var ErrEmptyKey = errors.New("hash: hmac key is empty")

// HMACSHA256 implements Hash with HMAC-SHA-256 and hex output.
type HMACSHA256 struct {
	key []byte
}

// NewHMACSHA256 creates a hasher keyed by key. The slice is copied.
func NewHMACSHA256(key []byte) *HMACSHA256 {
	return &HMACSHA256{key: append([]byte(nil), key...)}
}

// Hash returns the lowercase hex HMAC of str.
func (s *HMACSHA256) Hash(str string) ([]byte, error) {
	if len(s.key) == 0 {
		return nil, ErrEmptyKey
	}

	return s.gen(str), nil
}

// Verify checks whether hashed is the hex HMAC of str, in constant time.
func (s *HMACSHA256) Verify(hashed, str string) bool {
	if len(s.key) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(hashed), s.gen(str)) == 1
}

func (s *HMACSHA256) gen(str string) []byte {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(str))
	sum := h.Sum(nil)
	result := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(result, sum)
	return result
}
