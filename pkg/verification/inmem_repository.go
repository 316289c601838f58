package verification

import (
	"context"
	"sync"
)

// InMemRepository is a map-backed Repository for tests and local development.
// Members are seeded with AddMember.
type InMemRepository struct {
	mu       sync.RWMutex
	emails   map[string]int64
	verified map[int64]bool
	codes    map[int64]string
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		emails:   make(map[string]int64),
		verified: make(map[int64]bool),
		codes:    make(map[int64]string),
	}
}

// AddMember seeds an unverified member.
func (r *InMemRepository) AddMember(memberID int64, email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails[email] = memberID
	r.verified[memberID] = false
}

// IsVerified reports the member's verified flag.
func (r *InMemRepository) IsVerified(memberID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.verified[memberID]
}

func (r *InMemRepository) GetMemberIDByEmail(ctx context.Context, email string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return 0, ErrMemberNotFound
	}
	return id, nil
}

func (r *InMemRepository) UpsertCode(ctx context.Context, memberID int64, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[memberID] = code
	return nil
}

func (r *InMemRepository) GetRequestByEmail(ctx context.Context, email string) (VerificationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return VerificationRequest{}, ErrVerificationNotFound
	}
	code, ok := r.codes[id]
	if !ok {
		return VerificationRequest{}, ErrVerificationNotFound
	}
	return VerificationRequest{MemberID: id, Code: code}, nil
}

func (r *InMemRepository) ConfirmMember(ctx context.Context, memberID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.verified[memberID]; !ok {
		return ErrMemberNotFound
	}
	r.verified[memberID] = true
	delete(r.codes, memberID)
	return nil
}
