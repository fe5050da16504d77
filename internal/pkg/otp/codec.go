package otp

import (
	"errors"
	"strconv"

	"github.com/pquerna/otp"
	"github.com/shandysiswandi/entityreg/internal/pkg/hash"
)

const (
	// DefaultWindowSeconds is the length of one derivation window.
	DefaultWindowSeconds int64 = 300

	separator    = "-"
	hexPrefixLen = 6
	modulus      = 1_000_000
)

var (
	// ErrSecretRequired is returned when the shared secret is empty.
	ErrSecretRequired = errors.New("otp: secret is required")
	// ErrIdentityRequired is returned when the identity is empty.
	ErrIdentityRequired = errors.New("otp: identity is required")
)

// digits is the rendered code length.
const digits = otp.DigitsSix

// WindowIndex returns floor(nowEpochSeconds / windowLengthSeconds).
// A non-positive window length falls back to DefaultWindowSeconds.
func WindowIndex(nowEpochSeconds, windowLengthSeconds int64) int64 {
	if windowLengthSeconds <= 0 {
		windowLengthSeconds = DefaultWindowSeconds
	}

	q := nowEpochSeconds / windowLengthSeconds
	if nowEpochSeconds%windowLengthSeconds != 0 && nowEpochSeconds < 0 {
		q--
	}

	return q
}

// Derive computes the code for identity in the given window.
//
// The message is "<identity>-<secret>-<window>" and is signed with
// HMAC-SHA-256 keyed by secret. The first six hex characters of the digest,
// read as a base-16 integer and reduced mod 1e6, form the code.
func Derive(identity string, secret []byte, windowIndex int64) (string, error) {
	if len(secret) == 0 {
		return "", ErrSecretRequired
	}
	if identity == "" {
		return "", ErrIdentityRequired
	}

	msg := identity + separator + string(secret) + separator + strconv.FormatInt(windowIndex, 10)

	sum, err := hash.NewHMACSHA256(secret).Hash(msg)
	if err != nil {
		return "", err
	}

	n, err := strconv.ParseUint(string(sum[:hexPrefixLen]), 16, 32)
	if err != nil {
		return "", err
	}

	return digits.Format(int32(n % modulus)), nil
}
