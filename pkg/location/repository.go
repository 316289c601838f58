package location

import (
	"context"
	"errors"
)

// Location is a named coordinate owned by one member.
type Location struct {
	ID       int64   `json:"primarykey"`
	MemberID int64   `json:"-"`
	Nickname string  `json:"nickname"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"long"`
}

var ErrLocationNotFound = errors.New("location not found")

// Repository is the store gateway for locations.
type Repository interface {
	ListByMember(ctx context.Context, memberID int64) ([]Location, error)
	Create(ctx context.Context, loc Location) (Location, error)

	// Update replaces the nickname and coordinates only when the location
	// belongs to the member.
	Update(ctx context.Context, loc Location) error

	// Delete removes the location only when it belongs to the member.
	Delete(ctx context.Context, locationID, memberID int64) error
}
