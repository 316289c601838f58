package auth

import (
	"context"
	"errors"
)

// Member is a registered user of the application.
type Member struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	Email     string
	Verified  bool
}

// Credential holds the salted hash for exactly one member.
type Credential struct {
	MemberID   int64
	SaltedHash string
	Salt       string
}

// CreateMemberParams carries everything needed to create a member and its
// credential row together.
type CreateMemberParams struct {
	FirstName  string
	LastName   string
	Username   string
	Email      string
	SaltedHash string
	Salt       string
}

// Common errors surfaced by repositories.
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrUsernameExists = errors.New("username exists")
	ErrEmailExists    = errors.New("email exists")
)

// Repository is the store gateway for members and credentials. Uniqueness of
// username and email is enforced by the store, not by pre-checks.
type Repository interface {
	// CreateMemberWithCredential inserts the member and its credential as
	// one atomic unit.
	CreateMemberWithCredential(ctx context.Context, params CreateMemberParams) (Member, error)

	GetMemberByEmail(ctx context.Context, email string) (Member, error)
	GetCredentialByEmail(ctx context.Context, email string) (Credential, error)

	// UpdateCredential replaces the salted hash and salt for one member.
	UpdateCredential(ctx context.Context, memberID int64, saltedHash, salt string) error
}
