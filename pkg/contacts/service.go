package contacts

import (
	"context"

	"github.com/chatrapp/chatr/pkg/apperr"
)

// Service implements the contact request workflow.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a pending request from the requester to the member with
// targetEmail and returns the new connection id.
func (s *Service) Create(ctx context.Context, requesterID int64, targetEmail string) (int64, error) {
	if targetEmail == "" {
		return 0, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	targetID, err := s.repo.GetMemberIDByEmail(ctx, targetEmail)
	if err != nil {
		if err == ErrMemberNotFound {
			return 0, apperr.New(apperr.CodeNotFound, "User not found")
		}
		return 0, apperr.Wrap(err, apperr.CodeStore, "Failed to load member")
	}

	connID, err := s.repo.CreateContact(ctx, requesterID, targetID)
	if err != nil {
		if err == ErrContactExists {
			return 0, apperr.New(apperr.CodeContactConflict, "Connection already exists")
		}
		return 0, apperr.Wrap(err, apperr.CodeStore, "Failed to create contact")
	}
	return connID, nil
}

// Accept confirms an incoming request. Only the member the request was sent
// to can accept it.
func (s *Service) Accept(ctx context.Context, accepterID, connectionID int64) error {
	if err := s.repo.AcceptContact(ctx, connectionID, accepterID); err != nil {
		if err == ErrContactNotFound {
			return apperr.New(apperr.CodeNotFound, "No incoming request with specified id found for user")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to accept contact")
	}
	return nil
}

// Delete removes a connection the caller is part of, pending or verified.
func (s *Service) Delete(ctx context.Context, callerID, connectionID int64) error {
	if err := s.repo.DeleteContact(ctx, connectionID, callerID); err != nil {
		if err == ErrContactNotFound {
			return apperr.New(apperr.CodeNotFound, "Contact id not found or associated with user")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to delete contact")
	}
	return nil
}

// ListCurrent returns the member's verified contacts.
func (s *Service) ListCurrent(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	out, err := s.repo.ListCurrent(ctx, memberID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStore, "Failed to list contacts")
	}
	return out, nil
}

// ListOutgoing returns pending requests the member sent.
func (s *Service) ListOutgoing(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	out, err := s.repo.ListOutgoing(ctx, memberID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStore, "Failed to list contacts")
	}
	return out, nil
}

// ListIncoming returns pending requests addressed to the member.
func (s *Service) ListIncoming(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	out, err := s.repo.ListIncoming(ctx, memberID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStore, "Failed to list contacts")
	}
	return out, nil
}
