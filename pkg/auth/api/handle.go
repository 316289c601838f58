package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/auth"
)

// Handle exposes the auth service over HTTP.
type Handle struct {
	service  *auth.Service
	validate *validator.Validate
}

func NewHandle(service *auth.Service, validate *validator.Validate) Handle {
	return Handle{
		service:  service,
		validate: validate,
	}
}

// Routes wires the /auth endpoints.
func (h Handle) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/", h.Login)
	r.Put("/reset", h.ResetPassword)
	return r
}

// Register handles POST /auth.
func (h Handle) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	var params auth.RegisterParams
	if err := copier.Copy(&params, &req); err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeInternal, "Failed to read request"))
		return
	}

	m, err := h.service.Register(r.Context(), params)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RegisterResponse{Success: true, Email: m.Email})
}

// Login handles GET /auth. Credentials arrive in the Basic Authorization
// header.
func (h Handle) Login(w http.ResponseWriter, r *http.Request) {
	email, password, err := basicCredentials(r)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	_, signed, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, LoginResponse{
		Success: true,
		Message: "Authentication successful!",
		Token:   signed,
	})
}

// ResetPassword handles PUT /auth/reset. The temporary password is delivered
// by email only.
func (h Handle) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Email); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MessageResponse{
		Success: true,
		Message: "A temporary password has been sent to your email address",
	})
}

// ChangePassword handles POST /changePassword. A wrong email and a wrong
// password answer identically so the endpoint cannot be used to probe for
// accounts.
func (h Handle) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	err := h.service.ChangePassword(r.Context(), req.Email, req.OldPassword, req.NewPassword)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) || apperr.IsCode(err, apperr.CodeCredentialMismatch) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, apperr.ErrorResponse{Message: "Invalid email or password"})
			return
		}
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, MessageResponse{Success: true, Message: "Password changed"})
}

// basicCredentials extracts email and password from the Basic Authorization
// header.
func basicCredentials(r *http.Request) (string, string, error) {
	if r.Header.Get("Authorization") == "" {
		return "", "", apperr.New(apperr.CodeAuthHeaderMissing, "Missing Authorization Header")
	}
	email, password, ok := r.BasicAuth()
	if !ok {
		return "", "", apperr.New(apperr.CodeAuthHeaderMalformed, "Malformed Authorization Header")
	}
	return email, password, nil
}
