package otp

import "crypto/subtle"

// expiredLookback bounds how far back Inspect searches when classifying a
// rejected code. It only feeds logs.
const expiredLookback = 12

// Outcome classifies a verification attempt for operators. It must never be
// exposed to the caller that submitted the code.
type Outcome int

const (
	// OutcomeMismatch means the code matches no recent window.
	OutcomeMismatch Outcome = iota
	// OutcomeAccepted means the code is within the tolerance.
	OutcomeAccepted
	// OutcomeExpired means the code belongs to a window older than the tolerance.
	OutcomeExpired
)

// String returns the label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeExpired:
		return "expired"
	default:
		return "mismatch"
	}
}

// Verify reports whether code was derived for identity in the window that
// contains nowEpochSeconds or in one of the toleranceWindows windows before it.
//
// Comparison is on the padded string form. The only errors are the
// preconditions of Derive.
func Verify(identity string, secret []byte, code string, nowEpochSeconds, windowLengthSeconds int64, toleranceWindows int) (bool, error) {
	outcome, err := inspect(identity, secret, code, nowEpochSeconds, windowLengthSeconds, toleranceWindows, 0)
	if err != nil {
		return false, err
	}

	return outcome == OutcomeAccepted, nil
}

// Inspect behaves like Verify but tells apart an expired code from one that
// never matched.
func Inspect(identity string, secret []byte, code string, nowEpochSeconds, windowLengthSeconds int64, toleranceWindows int) (Outcome, error) {
	return inspect(identity, secret, code, nowEpochSeconds, windowLengthSeconds, toleranceWindows, expiredLookback)
}

func inspect(identity string, secret []byte, code string, now, length int64, tolerance, lookback int) (Outcome, error) {
	if tolerance < 0 {
		tolerance = 0
	}

	w := WindowIndex(now, length)
	for k := 0; k <= tolerance+lookback; k++ {
		expected, err := Derive(identity, secret, w-int64(k))
		if err != nil {
			return OutcomeMismatch, err
		}

		if subtle.ConstantTimeCompare([]byte(expected), []byte(code)) != 1 {
			continue
		}

		if k <= tolerance {
			return OutcomeAccepted, nil
		}
		return OutcomeExpired, nil
	}

	return OutcomeMismatch, nil
}
