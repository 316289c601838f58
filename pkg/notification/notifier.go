package notification

// NoticeType identifies a kind of outbound notice (e.g. a verification code
// email or a password reset email).
type NoticeType string

const (
	NoticeVerificationCode NoticeType = "verification_code"
	NoticeOTPCode          NoticeType = "otp_code"
	NoticePasswordReset    NoticeType = "password_reset"
	NoticeWelcome          NoticeType = "welcome"
)

// NotificationData carries the recipient and the template values for one
// notice.
type NotificationData struct {
	To   string            // Recipient email address
	Data map[string]string // Template values (e.g. "Code", "Password")
}

// NoticeTemplate holds the subject line and text body template of a notice.
type NoticeTemplate struct {
	Subject string
	Text    string
}

// Notifier delivers a rendered notice to a recipient.
type Notifier interface {
	Send(noticeType NoticeType, notification NotificationData, tmpl NoticeTemplate) error
}
