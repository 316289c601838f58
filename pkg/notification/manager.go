package notification

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Manager holds the notice templates and the notifier that delivers them.
type Manager struct {
	notifier Notifier
	registry map[NoticeType]NoticeTemplate
}

// NewManager creates a Manager delivering through the given notifier.
func NewManager(notifier Notifier) *Manager {
	return &Manager{
		notifier: notifier,
		registry: make(map[NoticeType]NoticeTemplate),
	}
}

// RegisterNotice adds or replaces the template for a notice type.
func (m *Manager) RegisterNotice(noticeType NoticeType, tmpl NoticeTemplate) error {
	if noticeType == "" || tmpl.Subject == "" || tmpl.Text == "" {
		return fmt.Errorf("invalid notice registration: type, subject and text are required")
	}
	m.registry[noticeType] = tmpl
	return nil
}

// Send renders and delivers a notice of the given type.
func (m *Manager) Send(noticeType NoticeType, notification NotificationData) error {
	tmpl, ok := m.registry[noticeType]
	if !ok {
		return fmt.Errorf("no template registered for notice type: %s", noticeType)
	}

	noticeID := uuid.New()
	slog.Info("Dispatching notice", "notice_id", noticeID, "type", noticeType, "to", notification.To)

	if err := m.notifier.Send(noticeType, notification, tmpl); err != nil {
		slog.Error("Notice dispatch failed", "notice_id", noticeID, "type", noticeType, "err", err)
		return err
	}
	return nil
}

// RegisterDefaultNotices installs the standard Chatr notice templates.
func RegisterDefaultNotices(m *Manager) error {
	defaults := map[NoticeType]NoticeTemplate{
		NoticeVerificationCode: {
			Subject: "Chatr Verification Code",
			Text:    "Your code is: {{.Code}}",
		},
		NoticeOTPCode: {
			Subject: "OTP Verification",
			Text:    "Your OTP code is: {{.Code}}",
		},
		NoticePasswordReset: {
			Subject: "Chatr Password Reset Instructions",
			Text: "Please login to your account using your temporary password, " +
				"then change your password within the app. Your temporary password is: {{.Password}}",
		},
		NoticeWelcome: {
			Subject: "Welcome to Chatr",
			Text:    "Welcome {{.FirstName}}! Your account has been created. Verify your email to start chatting.",
		},
	}

	for noticeType, tmpl := range defaults {
		if err := m.RegisterNotice(noticeType, tmpl); err != nil {
			return err
		}
	}
	return nil
}
