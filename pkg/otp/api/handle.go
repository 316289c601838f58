package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/otp"
)

// Handle exposes the OTP workflow over HTTP.
type Handle struct {
	service  *otp.Service
	validate *validator.Validate
}

func NewHandle(service *otp.Service, validate *validator.Validate) Handle {
	return Handle{service: service, validate: validate}
}

// RegisterRoutes wires the OTP endpoints onto the shared /verify router.
func (h Handle) RegisterRoutes(r chi.Router) {
	r.Post("/send-email", h.Send)
	r.Post("/resend-email", h.Resend)
	r.Post("/verify-otp", h.Verify)
}

// Send handles POST /verify/send-email.
func (h Handle) Send(w http.ResponseWriter, r *http.Request) {
	email, ok := h.decodeEmail(w, r)
	if !ok {
		return
	}

	if err := h.service.Send(r.Context(), email); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MessageResponse{Success: true, Message: "OTP sent"})
}

// Resend handles POST /verify/resend-email.
func (h Handle) Resend(w http.ResponseWriter, r *http.Request) {
	email, ok := h.decodeEmail(w, r)
	if !ok {
		return
	}

	if err := h.service.Resend(r.Context(), email); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MessageResponse{Success: true, Message: "OTP resent"})
}

// Verify handles POST /verify/verify-otp.
func (h Handle) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	if err := h.service.Verify(r.Context(), req.Email, req.OTP); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, MessageResponse{Success: true, Message: "OTP verified"})
}

func (h Handle) decodeEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req SendRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return "", false
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return "", false
	}
	return req.Email, true
}
