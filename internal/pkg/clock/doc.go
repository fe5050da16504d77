// Package clock hides the wall clock behind a small interface.
//
// OTP windows are derived from the current instant, so code that issues or
// verifies codes takes a Clocker and tests pin it with Fixed.
package clock
