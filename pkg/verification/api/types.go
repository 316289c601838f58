package api

// ConfirmRequest is the body of PUT /verify/{email}.
type ConfirmRequest struct {
	VerificationCode string `json:"verificationCode"`
}

// CodeResponse echoes the generated code for in-app confirmation.
type CodeResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

// SuccessResponse acknowledges a completed verification.
type SuccessResponse struct {
	Success bool `json:"success"`
}
