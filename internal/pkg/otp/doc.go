// Package otp derives and verifies stateless email one-time passwords.
//
// A code is never stored. It is recomputed from the email address, a
// server-held secret and a coarse time window, so issuing and verifying can
// happen in two unrelated requests (or processes) as long as they share the
// secret. Verification accepts the current window plus a configurable number
// of prior windows; future windows are always rejected.
package otp
