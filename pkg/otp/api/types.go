package api

// SendRequest is the body of POST /verify/send-email and
// POST /verify/resend-email.
type SendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyRequest is the body of POST /verify/verify-otp.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
