package otp

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/notification"
)

func newTestService(t *testing.T) (*Service, *InMemRepository, *notification.MockNotifier) {
	t.Helper()

	repo := NewInMemRepository()
	mock := notification.NewMockNotifier()
	manager := notification.NewManager(mock)
	require.NoError(t, notification.RegisterDefaultNotices(manager))

	return NewService(repo, manager), repo, mock
}

func sentCode(t *testing.T, mock *notification.MockNotifier) string {
	t.Helper()

	last := mock.LastSent()
	require.NotNil(t, last)
	require.Equal(t, notification.NoticeOTPCode, last.Type)
	return last.Data.Data["Code"]
}

func TestSend(t *testing.T) {
	svc, repo, mock := newTestService(t)
	repo.AddMember(1, "ada@example.com")

	require.NoError(t, svc.Send(context.Background(), "ada@example.com"))

	code := sentCode(t, mock)
	require.Len(t, code, 4)
	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1000)
	assert.LessOrEqual(t, n, 9999)
}

func TestSendUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Send(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestVerifyConsumesCode(t *testing.T) {
	svc, repo, mock := newTestService(t)
	repo.AddMember(1, "ada@example.com")
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "ada@example.com"))
	code := sentCode(t, mock)

	require.NoError(t, svc.Verify(ctx, "ada@example.com", code))

	// Replaying the consumed code fails.
	err := svc.Verify(ctx, "ada@example.com", code)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeOTPMismatch))
	assert.Contains(t, err.Error(), "OTP mismatch")
}

func TestVerifyWrongCode(t *testing.T) {
	svc, repo, mock := newTestService(t)
	repo.AddMember(1, "ada@example.com")
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "ada@example.com"))
	code := sentCode(t, mock)

	wrong := "1000"
	if code == wrong {
		wrong = "1001"
	}
	err := svc.Verify(ctx, "ada@example.com", wrong)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeOTPMismatch))

	// The stored code is still live after a failed attempt.
	require.NoError(t, svc.Verify(ctx, "ada@example.com", code))
}

func TestResendReplacesCode(t *testing.T) {
	svc, repo, mock := newTestService(t)
	repo.AddMember(1, "ada@example.com")
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "ada@example.com"))
	first := sentCode(t, mock)

	require.NoError(t, svc.Resend(ctx, "ada@example.com"))
	second := sentCode(t, mock)

	if first != second {
		err := svc.Verify(ctx, "ada@example.com", first)
		require.Error(t, err)
	}
	require.NoError(t, svc.Verify(ctx, "ada@example.com", second))
}

func TestResendAfterVerifyIssuesFreshCode(t *testing.T) {
	svc, repo, mock := newTestService(t)
	repo.AddMember(1, "ada@example.com")
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "ada@example.com"))
	require.NoError(t, svc.Verify(ctx, "ada@example.com", sentCode(t, mock)))

	// Resend has no precondition on the verified flag.
	require.NoError(t, svc.Resend(ctx, "ada@example.com"))
	require.NoError(t, svc.Verify(ctx, "ada@example.com", sentCode(t, mock)))
}

func TestResendWithoutSend(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.AddMember(1, "ada@example.com")

	err := svc.Resend(context.Background(), "ada@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestVerifyMissingInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Verify(context.Background(), "", "1234")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidInput))
}
