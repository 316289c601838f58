package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/credentials"
	"github.com/chatrapp/chatr/pkg/notification"
	"github.com/chatrapp/chatr/pkg/token"
)

func newTestService(t *testing.T) (*Service, *InMemRepository, *notification.MockNotifier) {
	t.Helper()

	repo := NewInMemRepository()
	mock := notification.NewMockNotifier()
	manager := notification.NewManager(mock)
	require.NoError(t, notification.RegisterDefaultNotices(manager))

	svc := NewService(
		repo,
		credentials.NewDefaultPasswordPolicyChecker(nil),
		token.NewService("test-secret"),
		manager,
	)
	return svc, repo, mock
}

func validRegistration() RegisterParams {
	return RegisterParams{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "Pass123!word",
	}
}

func TestRegister(t *testing.T) {
	svc, _, mock := newTestService(t)
	ctx := context.Background()

	m, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", m.Email)
	assert.Equal(t, "ada", m.Username)
	assert.False(t, m.Verified)

	last := mock.LastSent()
	require.NotNil(t, last)
	assert.Equal(t, notification.NoticeWelcome, last.Type)
	assert.Equal(t, "ada@example.com", last.Data.To)
}

func TestRegisterUsernameDefaultsToEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	params := validRegistration()
	params.Username = ""

	m, err := svc.Register(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, params.Email, m.Username)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	params := validRegistration()
	params.FirstName = ""

	_, err := svc.Register(context.Background(), params)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidInput))
	assert.Contains(t, err.Error(), "Missing required information")
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	params := validRegistration()
	params.Password = "short"

	_, err := svc.Register(context.Background(), params)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodePasswordPolicy))
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "other@example.com"
	_, err = svc.Register(ctx, dup)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeUsernameExists))

	dup = validRegistration()
	dup.Username = "other"
	_, err = svc.Register(ctx, dup)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeEmailExists))
}

func TestLogin(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	// Unverified members cannot log in.
	_, _, err = svc.Login(ctx, m.Email, "Pass123!word")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotVerified))

	repo.MarkVerified(m.ID)

	got, signed, err := svc.Login(ctx, m.Email, "Pass123!word")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.Equal(t, m.ID, got.ID)

	claims, err := token.NewService("test-secret").ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, m.Email, claims.Email)
	assert.Equal(t, m.ID, claims.MemberID)
}

func TestLoginFailures(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	repo.MarkVerified(m.ID)

	_, _, err = svc.Login(ctx, "nobody@example.com", "Pass123!word")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, _, err = svc.Login(ctx, m.Email, "wrong-password")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeCredentialMismatch))
}

func TestChangePassword(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	repo.MarkVerified(m.ID)

	err = svc.ChangePassword(ctx, m.Email, "wrong-password", "New123!word")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeCredentialMismatch))

	require.NoError(t, svc.ChangePassword(ctx, m.Email, "Pass123!word", "New123!word"))

	_, _, err = svc.Login(ctx, m.Email, "Pass123!word")
	require.Error(t, err)

	_, _, err = svc.Login(ctx, m.Email, "New123!word")
	require.NoError(t, err)
}

func TestResetPassword(t *testing.T) {
	svc, repo, mock := newTestService(t)
	ctx := context.Background()

	m, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	repo.MarkVerified(m.ID)

	require.NoError(t, svc.ResetPassword(ctx, m.Email))

	last := mock.LastSent()
	require.NotNil(t, last)
	assert.Equal(t, notification.NoticePasswordReset, last.Type)
	temp := last.Data.Data["Password"]
	require.NotEmpty(t, temp)

	// Old password no longer works, the mailed one does.
	_, _, err = svc.Login(ctx, m.Email, "Pass123!word")
	require.Error(t, err)

	_, _, err = svc.Login(ctx, m.Email, temp)
	require.NoError(t, err)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ResetPassword(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	assert.Contains(t, err.Error(), "unknown email address")
}
