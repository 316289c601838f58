package location

import (
	"context"
	"strconv"

	"github.com/chatrapp/chatr/pkg/apperr"
	"github.com/chatrapp/chatr/pkg/validation"
)

// Service implements the saved location workflow.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the member's saved locations.
func (s *Service) List(ctx context.Context, memberID int64) ([]Location, error) {
	out, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStore, "Failed to list locations")
	}
	return out, nil
}

// Add saves a named coordinate for the member. Lat and lng arrive as the
// caller sent them and must be signed decimal strings.
func (s *Service) Add(ctx context.Context, memberID int64, nickname, lat, lng string) (Location, error) {
	if !validation.IsStringProvided(nickname) || !validation.IsLatLong(lat+","+lng) {
		return Location{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Location{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return Location{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	loc, err := s.repo.Create(ctx, Location{
		MemberID: memberID,
		Nickname: nickname,
		Lat:      latF,
		Lng:      lngF,
	})
	if err != nil {
		return Location{}, apperr.Wrap(err, apperr.CodeStore, "Failed to save location")
	}
	return loc, nil
}

// Update replaces a saved location the member owns, with the same
// coordinate validation as Add.
func (s *Service) Update(ctx context.Context, memberID, locationID int64, nickname, lat, lng string) (Location, error) {
	if !validation.IsStringProvided(nickname) || !validation.IsLatLong(lat+","+lng) {
		return Location{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Location{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return Location{}, apperr.New(apperr.CodeInvalidInput, "Missing required information")
	}

	loc := Location{
		ID:       locationID,
		MemberID: memberID,
		Nickname: nickname,
		Lat:      latF,
		Lng:      lngF,
	}
	if err := s.repo.Update(ctx, loc); err != nil {
		if err == ErrLocationNotFound {
			return Location{}, apperr.New(apperr.CodeNotFound, "Location not found")
		}
		return Location{}, apperr.Wrap(err, apperr.CodeStore, "Failed to update location")
	}
	return loc, nil
}

// Delete removes a location the member owns.
func (s *Service) Delete(ctx context.Context, memberID, locationID int64) error {
	if err := s.repo.Delete(ctx, locationID, memberID); err != nil {
		if err == ErrLocationNotFound {
			return apperr.New(apperr.CodeNotFound, "Location not found")
		}
		return apperr.Wrap(err, apperr.CodeStore, "Failed to delete location")
	}
	return nil
}
