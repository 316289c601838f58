package auth

import (
	"context"
	"log/slog"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/credentials"
	"github.com/chatrapp/chatr/pkg/notification"
	"github.com/chatrapp/chatr/pkg/token"
)

const saltSize = 32

// NoticeSender delivers account notices. Satisfied by notification.Manager.
type NoticeSender interface {
	Send(noticeType notification.NoticeType, data notification.NotificationData) error
}

// Service implements registration, login and password management.
type Service struct {
	repo    Repository
	checker credentials.PasswordPolicyChecker
	tokens  *token.Service
	notices NoticeSender
}

func NewService(repo Repository, checker credentials.PasswordPolicyChecker, tokens *token.Service, notices NoticeSender) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
		tokens:  tokens,
		notices: notices,
	}
}

// RegisterParams carries the fields of a registration request.
type RegisterParams struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// Register creates a member together with its credential. The username
// defaults to the email address when not supplied.
func (s *Service) Register(ctx context.Context, params RegisterParams) (Member, error) {
	if params.FirstName == "" || params.LastName == "" || params.Email == "" || params.Password == "" {
		return Member{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}
	if params.Username == "" {
		params.Username = params.Email
	}

	if err := s.checker.CheckPasswordComplexity(params.Password); err != nil {
		return Member{}, apperr.Wrap(err, apperr.CodePasswordPolicy, "Password does not meet requirements")
	}

	salt, err := credentials.GenerateSalt(saltSize)
	if err != nil {
		return Member{}, apperr.Wrap(err, apperr.CodeInternal, "Failed to generate salt")
	}

	m, err := s.repo.CreateMemberWithCredential(ctx, CreateMemberParams{
		FirstName:  params.FirstName,
		LastName:   params.LastName,
		Username:   params.Username,
		Email:      params.Email,
		SaltedHash: credentials.GenerateHash(params.Password, salt),
		Salt:       salt,
	})
	if err != nil {
		switch err {
		case ErrUsernameExists:
			return Member{}, apperr.New(apperr.CodeUsernameExists, "Username exists")
		case ErrEmailExists:
			return Member{}, apperr.New(apperr.CodeEmailExists, "Email exists")
		}
		return Member{}, apperr.Wrap(err, apperr.CodeStore, "Failed to create user")
	}

	// Delivery failure must not undo a completed registration.
	if err := s.notices.Send(notification.NoticeWelcome, notification.NotificationData{
		To:   m.Email,
		Data: map[string]string{"FirstName": m.FirstName},
	}); err != nil {
		slog.Error("Failed to send welcome email", "email", m.Email, "err", err)
	}

	return m, nil
}

// Login verifies the credential for email and issues a signed token. Members
// that have not completed email verification cannot log in.
func (s *Service) Login(ctx context.Context, email, password string) (Member, string, error) {
	cred, err := s.repo.GetCredentialByEmail(ctx, email)
	if err != nil {
		if err == ErrMemberNotFound {
			return Member{}, "", apperr.New(apperr.CodeNotFound, "User not found")
		}
		return Member{}, "", apperr.Wrap(err, apperr.CodeStore, "Failed to load credential")
	}

	if credentials.GenerateHash(password, cred.Salt) != cred.SaltedHash {
		return Member{}, "", apperr.New(apperr.CodeCredentialMismatch, "Credentials did not match")
	}

	m, err := s.repo.GetMemberByEmail(ctx, email)
	if err != nil {
		return Member{}, "", apperr.Wrap(err, apperr.CodeStore, "Failed to load member")
	}
	if !m.Verified {
		return Member{}, "", apperr.New(apperr.CodeNotVerified, "User is not verified")
	}

	signed, err := s.tokens.IssueToken(m.Email, m.ID)
	if err != nil {
		return Member{}, "", apperr.Wrap(err, apperr.CodeInternal, "Failed to issue token")
	}
	return m, signed, nil
}

// ChangePassword replaces the member's credential after verifying the
// current password.
func (s *Service) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	cred, err := s.repo.GetCredentialByEmail(ctx, email)
	if err != nil {
		if err == ErrMemberNotFound {
			return apperr.New(apperr.CodeNotFound, "User not found")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to load credential")
	}

	if credentials.GenerateHash(currentPassword, cred.Salt) != cred.SaltedHash {
		return apperr.New(apperr.CodeCredentialMismatch, "Credentials did not match")
	}

	salt, err := credentials.GenerateSalt(saltSize)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "Failed to generate salt")
	}
	if err := s.repo.UpdateCredential(ctx, cred.MemberID, credentials.GenerateHash(newPassword, salt), salt); err != nil {
		return apperr.Wrap(err, apperr.CodeStore, "Failed to update password")
	}
	return nil
}

// ResetPassword replaces the member's credential with a generated temporary
// password and mails it to the member. The password travels only by email.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	m, err := s.repo.GetMemberByEmail(ctx, email)
	if err != nil {
		if err == ErrMemberNotFound {
			return apperr.New(apperr.CodeNotFound, "unknown email address")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to load member")
	}

	temp, err := credentials.GeneratePassword()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "Failed to generate password")
	}
	salt, err := credentials.GenerateSalt(saltSize)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "Failed to generate salt")
	}

	if err := s.repo.UpdateCredential(ctx, m.ID, credentials.GenerateHash(temp, salt), salt); err != nil {
		return apperr.Wrap(err, apperr.CodeStore, "Failed to update password")
	}

	if err := s.notices.Send(notification.NoticePasswordReset, notification.NotificationData{
		To:   m.Email,
		Data: map[string]string{"Password": temp},
	}); err != nil {
		return apperr.Wrap(err, apperr.CodeMail, "Failed to send password reset email")
	}
	return nil
}
