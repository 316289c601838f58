// Package credentials provides the credential utilities for the Chatr
// backend: salt generation, the deterministic salted SHA-256 password hash,
// temporary password generation and the password complexity policy.
package credentials
