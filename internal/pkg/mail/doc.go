// Package mail sends email messages.
//
// Callers depend on the Mail interface and the provider-agnostic Message. SMTP
// delivers over net/smtp with STARTTLS; Retrying wraps any Mail with a capped
// Fibonacci backoff for transient relay failures.
package mail
