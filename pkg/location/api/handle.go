package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/location"
	"github.com/chatrapp/chatr/pkg/token"
)

// Handle exposes saved locations over HTTP, behind the token guard.
type Handle struct {
	service  *location.Service
	validate *validator.Validate
}

func NewHandle(service *location.Service, validate *validator.Validate) Handle {
	return Handle{service: service, validate: validate}
}

// Routes wires the /location endpoints.
func (h Handle) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Put("/", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// List handles GET /location.
func (h Handle) List(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	out, err := h.service.List(r.Context(), memberID)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}
	if out == nil {
		out = []location.Location{}
	}

	render.JSON(w, r, ListResponse{Success: true, Locations: out})
}

// Add handles POST /location.
func (h Handle) Add(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	var req AddRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	loc, err := h.service.Add(r.Context(), memberID, req.Nickname, req.Lat, req.Lng)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, AddResponse{Success: true, Location: loc})
}

// Update handles PUT /location.
func (h Handle) Update(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	var req UpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	loc, err := h.service.Update(r.Context(), memberID, req.ID, req.Nickname, req.Lat, req.Lng)
	if err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, AddResponse{Success: true, Location: loc})
}

// Delete handles DELETE /location/{id}.
func (h Handle) Delete(w http.ResponseWriter, r *http.Request) {
	memberID, err := token.MemberID(r)
	if err != nil {
		apperr.RenderError(w, r, apperr.Wrap(err, apperr.CodeTokenInvalid, "Token is not valid"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apperr.RenderError(w, r, apperr.New(apperr.CodeInvalidInput, "Missing required information"))
		return
	}

	if err := h.service.Delete(r.Context(), memberID, id); err != nil {
		apperr.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, MessageResponse{Success: true, Message: "Location deleted"})
}
