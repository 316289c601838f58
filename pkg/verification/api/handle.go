package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/verification"
)

// Handle exposes the email verification workflow over HTTP.
type Handle struct {
	service *verification.Service
}

func NewHandle(service *verification.Service) Handle {
	return Handle{service: service}
}

// RegisterRoutes wires the code request and confirmation endpoints onto the
// shared /verify router. The OTP variant registers its own routes there too;
// its static paths take precedence over the email parameter.
func (h Handle) RegisterRoutes(r chi.Router) {
	r.Post("/{email}", h.Request)
	r.Put("/{email}", h.Confirm)
}

// Request handles POST /verify/{email}.
func (h Handle) Request(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	code, err := h.service.Request(r.Context(), email)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CodeResponse{Success: true, Code: code})
}

// Confirm handles PUT /verify/{email}.
func (h Handle) Confirm(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req ConfirmRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	if err := h.service.Confirm(r.Context(), email, req.VerificationCode); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, SuccessResponse{Success: true})
}
