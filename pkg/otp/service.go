package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/notification"
)

// NoticeSender delivers OTP notices. Satisfied by notification.Manager.
type NoticeSender interface {
	Send(noticeType notification.NoticeType, data notification.NotificationData) error
}

// Service implements the one-time code workflow.
type Service struct {
	repo    Repository
	notices NoticeSender
}

func NewService(repo Repository, notices NoticeSender) *Service {
	return &Service{repo: repo, notices: notices}
}

// Send stores a fresh four digit code for the member and emails it.
func (s *Service) Send(ctx context.Context, email string) error {
	if email == "" {
		return apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	code, err := generateCode()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "Failed to generate code")
	}

	if err := s.repo.StoreCode(ctx, email, code); err != nil {
		if err == ErrMemberNotFound {
			return apperr.New(apperr.CodeNotFound, "unknown email address")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to store code")
	}

	return s.dispatch(email, code)
}

// Resend overwrites the member's stored code with a fresh one, verified or
// not, and emails it.
func (s *Service) Resend(ctx context.Context, email string) error {
	if email == "" {
		return apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	code, err := generateCode()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "Failed to generate code")
	}

	if err := s.repo.ReplaceCode(ctx, email, code); err != nil {
		if err == ErrOTPNotFound {
			return apperr.New(apperr.CodeNotFound, "unknown email address")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to store code")
	}

	return s.dispatch(email, code)
}

// Verify consumes the code. A replayed or wrong code answers the same
// mismatch either way.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	if err := s.repo.ConsumeCode(ctx, email, code); err != nil {
		if err == ErrCodeMismatch {
			return apperr.New(apperr.CodeOTPMismatch, "OTP mismatch")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to verify code")
	}
	return nil
}

func (s *Service) dispatch(email, code string) error {
	if err := s.notices.Send(notification.NoticeOTPCode, notification.NotificationData{
		To:   email,
		Data: map[string]string{"Code": code},
	}); err != nil {
		return apperr.Wrap(err, apperr.CodeMail, "Failed to send OTP email")
	}
	return nil
}

// generateCode produces a four digit code in [1000, 9999].
func generateCode() (string, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return fmt.Sprintf("%d", v.Int64()+1000), nil
}
