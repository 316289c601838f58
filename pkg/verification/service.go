package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/notification"
)

// NoticeSender delivers verification notices. Satisfied by
// notification.Manager.
type NoticeSender interface {
	Send(noticeType notification.NoticeType, data notification.NotificationData) error
}

// Service implements the email verification workflow.
type Service struct {
	repo    Repository
	notices NoticeSender
}

func NewService(repo Repository, notices NoticeSender) *Service {
	return &Service{repo: repo, notices: notices}
}

// Request stores a fresh five digit code for the member and emails it. The
// code is also returned for in-app confirmation.
func (s *Service) Request(ctx context.Context, email string) (string, error) {
	memberID, err := s.repo.GetMemberIDByEmail(ctx, email)
	if err != nil {
		if err == ErrMemberNotFound {
			return "", apperr.New(apperr.CodeNotFound, "unknown email address")
		}
		return "", apperr.Wrap(err, apperr.CodeStore, "Failed to load member")
	}

	code, err := generateCode(5)
	if err != nil {
		return "", apperr.Wrap(err, apperr.CodeInternal, "Failed to generate code")
	}

	if err := s.repo.UpsertCode(ctx, memberID, code); err != nil {
		return "", apperr.Wrap(err, apperr.CodeStore, "Failed to store verification code")
	}

	if err := s.notices.Send(notification.NoticeVerificationCode, notification.NotificationData{
		To:   email,
		Data: map[string]string{"Code": code},
	}); err != nil {
		return "", apperr.Wrap(err, apperr.CodeMail, "Failed to send verification email")
	}
	return code, nil
}

// Confirm checks the submitted code and, on match, marks the member verified
// and retires the code.
func (s *Service) Confirm(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	req, err := s.repo.GetRequestByEmail(ctx, email)
	if err != nil {
		if err == ErrVerificationNotFound {
			return apperr.New(apperr.CodeNotFound, "unknown email address")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to load verification")
	}

	if req.Code != code {
		return apperr.New(apperr.CodeCodeMismatch, "The provided code is incorrect")
	}

	if err := s.repo.ConfirmMember(ctx, req.MemberID); err != nil {
		return apperr.Wrap(err, apperr.CodeStore, "Failed to confirm member")
	}
	return nil
}

// generateCode produces n random decimal digits.
func generateCode(n int) (string, error) {
	code := make([]byte, n)
	for i := range code {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		code[i] = byte('0' + v.Int64())
	}
	return string(code), nil
}
