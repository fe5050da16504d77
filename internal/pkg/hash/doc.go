// Package hash provides keyed hashing helpers.
//
// The OTP codec builds its codes on top of the HMAC implementation in this
// package, so callers never touch crypto/hmac directly.
package hash
