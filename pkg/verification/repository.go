package verification

import (
	"context"
	"errors"
)

// VerificationRequest is the outstanding email code for one member. A member
// has at most one.
type VerificationRequest struct {
	MemberID int64
	Code     string
}

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrVerificationNotFound = errors.New("verification not found")
)

// Repository is the store gateway for verification codes.
type Repository interface {
	GetMemberIDByEmail(ctx context.Context, email string) (int64, error)

	// UpsertCode stores the code for the member, replacing any earlier one.
	UpsertCode(ctx context.Context, memberID int64, code string) error

	// GetRequestByEmail returns the outstanding request for the member with
	// the given email.
	GetRequestByEmail(ctx context.Context, email string) (VerificationRequest, error)

	// ConfirmMember marks the member verified and removes the verification
	// row as one atomic unit.
	ConfirmMember(ctx context.Context, memberID int64) error
}
