package location

import (
	"context"
	"sort"
	"sync"
)

// InMemRepository is a map-backed Repository for tests and local development.
type InMemRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]Location
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		nextID: 1,
		rows:   make(map[int64]Location),
	}
}

func (r *InMemRepository) ListByMember(ctx context.Context, memberID int64) ([]Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Location
	for _, l := range r.rows {
		if l.MemberID == memberID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemRepository) Create(ctx context.Context, loc Location) (Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc.ID = r.nextID
	r.nextID++
	r.rows[loc.ID] = loc
	return loc, nil
}

func (r *InMemRepository) Update(ctx context.Context, loc Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[loc.ID]
	if !ok || existing.MemberID != loc.MemberID {
		return ErrLocationNotFound
	}
	r.rows[loc.ID] = loc
	return nil
}

func (r *InMemRepository) Delete(ctx context.Context, locationID, memberID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.rows[locationID]
	if !ok || l.MemberID != memberID {
		return ErrLocationNotFound
	}
	delete(r.rows, locationID)
	return nil
}
