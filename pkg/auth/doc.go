// Package auth implements member registration, Basic-auth login with JWT
// issuance, password change and password reset.
package auth
