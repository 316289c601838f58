package apperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorResponse is the JSON body rendered for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// RenderError writes the JSON error response for err. Structured errors map
// to their HTTP status; anything else is logged and answered with 500.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	var e *Error
	if !errors.As(err, &e) {
		slog.Error("Unstructured error reached handler", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Message: "Internal server error"})
		return
	}

	resp := ErrorResponse{Message: e.Message}
	if e.Err != nil && e.Code == CodeStore {
		resp.Detail = e.Err.Error()
	}

	render.Status(r, e.HTTPStatusCode())
	render.JSON(w, r, resp)
}
