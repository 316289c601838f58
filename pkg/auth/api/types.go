package api

// RegisterRequest is the body of POST /auth.
type RegisterRequest struct {
	FirstName string `json:"first" validate:"required"`
	LastName  string `json:"last" validate:"required"`
	Username  string `json:"username"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// RegisterResponse confirms a created account.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}

// LoginResponse carries the signed token after a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ResetPasswordRequest is the body of PUT /auth/reset.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest is the body of POST /changePassword.
type ChangePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
