// Package instrument wires structured logging, tracing and metrics.
//
// Logging is always installed as the slog default: a JSON handler on stdout
// that masks sensitive keys (the OTP secret, submitted codes, mail passwords)
// and stamps the request correlation ID. When OpenTelemetry is enabled the
// same records are also shipped through the OTLP log bridge, and tracers and
// meters come from SDK providers; otherwise they are noops.
package instrument
