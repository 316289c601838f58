package otp

import (
	"context"
	"errors"
)

// OTPVerification is the one-time code state for a member. The verified flag
// consumes the code: once true the same code can never verify again.
type OTPVerification struct {
	MemberID int64
	Code     string
	Verified bool
}

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrOTPNotFound    = errors.New("otp not found")
	ErrCodeMismatch   = errors.New("otp code mismatch")
)

// Repository is the store gateway for one-time codes.
type Repository interface {
	// StoreCode inserts or replaces the member's code and resets the
	// verified flag. Returns ErrMemberNotFound when no member has the email.
	StoreCode(ctx context.Context, email, code string) error

	// ReplaceCode overwrites the member's existing code regardless of its
	// verified state. Returns ErrOTPNotFound when the member has no code.
	ReplaceCode(ctx context.Context, email, code string) error

	// ConsumeCode flips the verified flag for a live (member, code) row.
	// Returns ErrCodeMismatch when no unconsumed row matches.
	ConsumeCode(ctx context.Context, email, code string) error
}
