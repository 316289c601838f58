package api

import "github.com/chatrapp/chatr/pkg/contacts"

// CreateResponse returns the id of a newly created contact request.
type CreateResponse struct {
	Success      bool  `json:"success"`
	ConnectionID int64 `json:"connectionid"`
}

// ListResponse carries a contact projection.
type ListResponse struct {
	Success  bool                   `json:"success"`
	Contacts []contacts.ContactInfo `json:"contacts"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
