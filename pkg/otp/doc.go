// Package otp implements the one-time code workflow: four digit codes,
// regenerated on each send, consumed exactly once on verification.
package otp
