package contacts

import (
	"context"
	"errors"
)

// Contact links two members. Created directed (A requests B); once verified
// the relationship is symmetric.
type Contact struct {
	ConnectionID int64
	MemberA      int64
	MemberB      int64
	Verified     bool
}

// ContactInfo is the member identity projected for contact listings.
type ContactInfo struct {
	ConnectionID int64  `json:"connectionid"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
}

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrContactNotFound = errors.New("contact not found")
	ErrContactExists   = errors.New("contact exists")
)

// Repository is the store gateway for contact rows. Pair uniqueness in
// either direction is enforced by the store.
type Repository interface {
	GetMemberIDByEmail(ctx context.Context, email string) (int64, error)

	// CreateContact inserts a pending request from memberA to memberB and
	// returns the new connection id. Returns ErrContactExists when any row
	// already links the pair in either direction.
	CreateContact(ctx context.Context, memberA, memberB int64) (int64, error)

	// AcceptContact marks the connection verified. Only the request target
	// may accept; anything else is ErrContactNotFound.
	AcceptContact(ctx context.Context, connectionID, accepterID int64) error

	// DeleteContact removes the connection. Either party may delete,
	// pending or verified.
	DeleteContact(ctx context.Context, connectionID, callerID int64) error

	// ListCurrent returns the other party of every verified connection.
	ListCurrent(ctx context.Context, memberID int64) ([]ContactInfo, error)

	// ListOutgoing returns pending requests the member sent.
	ListOutgoing(ctx context.Context, memberID int64) ([]ContactInfo, error)

	// ListIncoming returns pending requests addressed to the member.
	ListIncoming(ctx context.Context, memberID int64) ([]ContactInfo, error)
}
