package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerSend(t *testing.T) {
	mock := NewMockNotifier()
	manager := NewManager(mock)
	require.NoError(t, RegisterDefaultNotices(manager))

	err := manager.Send(NoticeVerificationCode, NotificationData{
		To:   "cfb3@fake.email",
		Data: map[string]string{"Code": "12345"},
	})
	require.NoError(t, err)

	sent := mock.LastSent()
	require.NotNil(t, sent)
	assert.Equal(t, NoticeVerificationCode, sent.Type)
	assert.Equal(t, "cfb3@fake.email", sent.Data.To)
	assert.Equal(t, "Chatr Verification Code", sent.Template.Subject)
}

func TestManagerSendUnknownNotice(t *testing.T) {
	manager := NewManager(NewMockNotifier())

	err := manager.Send(NoticeType("nope"), NotificationData{To: "a@b.c"})
	assert.Error(t, err)
}

func TestManagerSendDeliveryFailure(t *testing.T) {
	mock := NewMockNotifier()
	mock.FailWith = errors.New("smtp down")

	manager := NewManager(mock)
	require.NoError(t, RegisterDefaultNotices(manager))

	err := manager.Send(NoticeOTPCode, NotificationData{To: "a@b.c", Data: map[string]string{"Code": "1234"}})
	assert.Error(t, err)
}

func TestRegisterNoticeValidation(t *testing.T) {
	manager := NewManager(NewMockNotifier())

	assert.Error(t, manager.RegisterNotice("", NoticeTemplate{Subject: "s", Text: "t"}))
	assert.Error(t, manager.RegisterNotice(NoticeWelcome, NoticeTemplate{Subject: "", Text: "t"}))
	assert.NoError(t, manager.RegisterNotice(NoticeWelcome, NoticeTemplate{Subject: "s", Text: "t"}))
}

func TestRenderText(t *testing.T) {
	body, err := renderText("Your code is: {{.Code}}", map[string]string{"Code": "98765"})
	require.NoError(t, err)
	assert.Equal(t, "Your code is: 98765", body)
}
