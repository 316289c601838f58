package notification

import "sync"

// SentNotice records one delivery through the MockNotifier.
type SentNotice struct {
	Type     NoticeType
	Data     NotificationData
	Template NoticeTemplate
}

// MockNotifier records notices instead of delivering them. Used in tests.
type MockNotifier struct {
	mu       sync.Mutex
	Sent     []SentNotice
	FailWith error
}

// NewMockNotifier creates an empty MockNotifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Send records the notice, or fails when FailWith is set.
func (m *MockNotifier) Send(noticeType NoticeType, notification NotificationData, tmpl NoticeTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	m.Sent = append(m.Sent, SentNotice{Type: noticeType, Data: notification, Template: tmpl})
	return nil
}

// LastSent returns the most recent notice, or nil when none were sent.
func (m *MockNotifier) LastSent() *SentNotice {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Sent) == 0 {
		return nil
	}
	return &m.Sent[len(m.Sent)-1]
}
