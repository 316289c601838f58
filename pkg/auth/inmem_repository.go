package auth

import (
	"context"
	"sync"
)

// InMemRepository is a map-backed Repository for tests and local development.
type InMemRepository struct {
	mu          sync.RWMutex
	nextID      int64
	members     map[int64]Member
	credentials map[int64]Credential
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		nextID:      1,
		members:     make(map[int64]Member),
		credentials: make(map[int64]Credential),
	}
}

func (r *InMemRepository) CreateMemberWithCredential(ctx context.Context, params CreateMemberParams) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.Username == params.Username {
			return Member{}, ErrUsernameExists
		}
		if m.Email == params.Email {
			return Member{}, ErrEmailExists
		}
	}

	m := Member{
		ID:        r.nextID,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Username:  params.Username,
		Email:     params.Email,
		Verified:  false,
	}
	r.nextID++
	r.members[m.ID] = m
	r.credentials[m.ID] = Credential{
		MemberID:   m.ID,
		SaltedHash: params.SaltedHash,
		Salt:       params.Salt,
	}
	return m, nil
}

func (r *InMemRepository) GetMemberByEmail(ctx context.Context, email string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return Member{}, ErrMemberNotFound
}

func (r *InMemRepository) GetCredentialByEmail(ctx context.Context, email string) (Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.Email == email {
			return r.credentials[m.ID], nil
		}
	}
	return Credential{}, ErrMemberNotFound
}

func (r *InMemRepository) UpdateCredential(ctx context.Context, memberID int64, saltedHash, salt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.credentials[memberID]; !ok {
		return ErrMemberNotFound
	}
	r.credentials[memberID] = Credential{
		MemberID:   memberID,
		SaltedHash: saltedHash,
		Salt:       salt,
	}
	return nil
}

// MarkVerified flips the verified flag. Tests use it to simulate a completed
// email verification.
func (r *InMemRepository) MarkVerified(memberID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.members[memberID]; ok {
		m.Verified = true
		r.members[memberID] = m
	}
}
