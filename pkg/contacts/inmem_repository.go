package contacts

import (
	"context"
	"sort"
	"sync"
)

type inmemMember struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// InMemRepository is a map-backed Repository for tests and local development.
// Members are seeded with AddMember.
type InMemRepository struct {
	mu      sync.RWMutex
	nextID  int64
	members map[int64]inmemMember
	rows    map[int64]Contact
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		nextID:  1,
		members: make(map[int64]inmemMember),
		rows:    make(map[int64]Contact),
	}
}

func (r *InMemRepository) AddMember(id int64, username, email, firstName, lastName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[id] = inmemMember{
		ID:        id,
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
}

func (r *InMemRepository) GetMemberIDByEmail(ctx context.Context, email string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.Email == email {
			return m.ID, nil
		}
	}
	return 0, ErrMemberNotFound
}

func (r *InMemRepository) CreateContact(ctx context.Context, memberA, memberB int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.rows {
		if (c.MemberA == memberA && c.MemberB == memberB) ||
			(c.MemberA == memberB && c.MemberB == memberA) {
			return 0, ErrContactExists
		}
	}

	id := r.nextID
	r.nextID++
	r.rows[id] = Contact{ConnectionID: id, MemberA: memberA, MemberB: memberB}
	return id, nil
}

func (r *InMemRepository) AcceptContact(ctx context.Context, connectionID, accepterID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[connectionID]
	if !ok || c.MemberB != accepterID {
		return ErrContactNotFound
	}
	c.Verified = true
	r.rows[connectionID] = c
	return nil
}

func (r *InMemRepository) DeleteContact(ctx context.Context, connectionID, callerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[connectionID]
	if !ok || (c.MemberA != callerID && c.MemberB != callerID) {
		return ErrContactNotFound
	}
	delete(r.rows, connectionID)
	return nil
}

func (r *InMemRepository) ListCurrent(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	return r.list(func(c Contact) (int64, bool) {
		if !c.Verified {
			return 0, false
		}
		switch memberID {
		case c.MemberA:
			return c.MemberB, true
		case c.MemberB:
			return c.MemberA, true
		}
		return 0, false
	})
}

func (r *InMemRepository) ListOutgoing(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	return r.list(func(c Contact) (int64, bool) {
		if !c.Verified && c.MemberA == memberID {
			return c.MemberB, true
		}
		return 0, false
	})
}

func (r *InMemRepository) ListIncoming(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	return r.list(func(c Contact) (int64, bool) {
		if !c.Verified && c.MemberB == memberID {
			return c.MemberA, true
		}
		return 0, false
	})
}

func (r *InMemRepository) list(project func(Contact) (int64, bool)) ([]ContactInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ContactInfo
	for _, c := range r.rows {
		otherID, ok := project(c)
		if !ok {
			continue
		}
		m := r.members[otherID]
		out = append(out, ContactInfo{
			ConnectionID: c.ConnectionID,
			Username:     m.Username,
			Email:        m.Email,
			FirstName:    m.FirstName,
			LastName:     m.LastName,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConnectionID < out[j].ConnectionID })
	return out, nil
}
