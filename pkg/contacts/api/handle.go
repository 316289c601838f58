package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/contacts"
	"github.com/chatrapp/chatr/pkg/token"
)

// Handle exposes the contact workflow over HTTP. All routes sit behind the
// token guard; the caller's identity comes from the token claims.
type Handle struct {
	service *contacts.Service
}

func NewHandle(service *contacts.Service) Handle {
	return Handle{service: service}
}

// Routes wires the /contacts endpoints.
func (h Handle) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/current", h.ListCurrent)
	r.Get("/outgoing", h.ListOutgoing)
	r.Get("/incoming", h.ListIncoming)
	r.Post("/{email}", h.Create)
	r.Put("/accept/{connId}", h.Accept)
	r.Delete("/{connId}", h.Delete)
	return r
}

// Create handles POST /contacts/{email}.
func (h Handle) Create(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	connID, err := h.service.Create(r.Context(), memberID, chi.URLParam(r, "email"))
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CreateResponse{Success: true, ConnectionID: connID})
}

// Accept handles PUT /contacts/accept/{connId}.
func (h Handle) Accept(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	connID, ok := connectionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Accept(r.Context(), memberID, connID); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MessageResponse{Success: true, Message: "Contact accepted"})
}

// Delete handles DELETE /contacts/{connId}.
func (h Handle) Delete(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	connID, ok := connectionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), memberID, connID); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, MessageResponse{Success: true, Message: "Contact deleted"})
}

// ListCurrent handles GET /contacts/current.
func (h Handle) ListCurrent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListCurrent)
}

// ListOutgoing handles GET /contacts/outgoing.
func (h Handle) ListOutgoing(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListOutgoing)
}

// ListIncoming handles GET /contacts/incoming.
func (h Handle) ListIncoming(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListIncoming)
}

func (h Handle) list(w http.ResponseWriter, r *http.Request,
	fetch func(ctx context.Context, memberID int64) ([]contacts.ContactInfo, error)) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	out, err := fetch(r.Context(), memberID)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}
	if out == nil {
		out = []contacts.ContactInfo{}
	}

	render.JSON(w, r, ListResponse{Success: true, Contacts: out})
}

// connectionID parses the connId route parameter. A non-numeric id answers
// 400 before any store access.
func connectionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "connId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Malformed parameter: connId must be a number"))
		return 0, false
	}
	return id, true
}
