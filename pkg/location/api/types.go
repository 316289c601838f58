package api

import "github.com/chatrapp/chatr/pkg/location"

// AddRequest is the body of POST /location. Coordinates travel as strings
// and are validated before parsing.
type AddRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Lat      string `json:"lat" validate:"required"`
	Lng      string `json:"long" validate:"required"`
}

// UpdateRequest is the body of PUT /location.
type UpdateRequest struct {
	ID       int64  `json:"primarykey" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
	Lat      string `json:"lat" validate:"required"`
	Lng      string `json:"long" validate:"required"`
}

// AddResponse echoes the saved location.
type AddResponse struct {
	Success  bool              `json:"success"`
	Location location.Location `json:"location"`
}

// ListResponse carries the member's saved locations.
type ListResponse struct {
	Success   bool                `json:"success"`
	Locations []location.Location `json:"locations"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
