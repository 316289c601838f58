package otp

import (
	"context"
	"sync"
)

// InMemRepository is a map-backed Repository for tests and local development.
// Members are seeded with AddMember.
type InMemRepository struct {
	mu     sync.RWMutex
	emails map[string]int64
	rows   map[int64]OTPVerification
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		emails: make(map[string]int64),
		rows:   make(map[int64]OTPVerification),
	}
}

func (r *InMemRepository) AddMember(memberID int64, email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails[email] = memberID
}

func (r *InMemRepository) StoreCode(ctx context.Context, email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.emails[email]
	if !ok {
		return ErrMemberNotFound
	}
	r.rows[id] = OTPVerification{MemberID: id, Code: code, Verified: false}
	return nil
}

func (r *InMemRepository) ReplaceCode(ctx context.Context, email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.emails[email]
	if !ok {
		return ErrOTPNotFound
	}
	if _, ok := r.rows[id]; !ok {
		return ErrOTPNotFound
	}
	r.rows[id] = OTPVerification{MemberID: id, Code: code, Verified: false}
	return nil
}

func (r *InMemRepository) ConsumeCode(ctx context.Context, email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.emails[email]
	if !ok {
		return ErrCodeMismatch
	}
	row, ok := r.rows[id]
	if !ok || row.Code != code || row.Verified {
		return ErrCodeMismatch
	}
	row.Verified = true
	r.rows[id] = row
	return nil
}
