package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	latLongRegex = regexp.MustCompile(`^-?([1-8]?\d(\.\d+)?|90(\.0+)?),-?(180(\.0+)?|((1[0-7]\d)|([1-9]?\d))(\.\d+)?)$`)
	zipCodeRegex = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)
)

// IsStringProvided reports whether s is a non-empty string.
func IsStringProvided(s string) bool {
	return len(s) > 0
}

// IsLatLong reports whether s is in "latitude,longitude" format with the
// latitude in [-90,90] and the longitude in [-180,180].
func IsLatLong(s string) bool {
	return latLongRegex.MatchString(s)
}

// IsZipCode reports whether s is a zip or zip+4 code.
func IsZipCode(s string) bool {
	return zipCodeRegex.MatchString(s)
}

// New returns a validator with the Chatr custom validations registered:
// "latlong" for "lat,lng" strings and "zipcode" for zip / zip+4 codes.
func New() *validator.Validate {
	v := validator.New()

	// RegisterValidation only fails on an empty tag or nil func.
	_ = v.RegisterValidation("latlong", func(fl validator.FieldLevel) bool {
		return IsLatLong(fl.Field().String())
	})
	_ = v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return IsZipCode(fl.Field().String())
	})

	return v
}
