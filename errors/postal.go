package errors

import (
	stderrors "errors"

	"github.com/vortex-fintech/postal-lib/foundation/postal"
)

// InvalidPostcode builds the boundary error for input that failed extraction.
// The raw input is deliberately not echoed into details; callers decide what
// is safe to expose.
func InvalidPostcode(countryCode string) ErrorResponse {
	return InvalidArgument().
		WithReason("invalid_postcode").
		WithDetail("country_code", countryCode)
}

// MissingArgument marks a usage error: a value was neither supplied nor
// resolvable from a source.
func MissingArgument(name string) ErrorResponse {
	return InvalidArgument().
		WithReason("missing_argument").
		WithDetail("argument", name)
}

// FromPostal maps the postal sentinel errors onto the boundary taxonomy.
func FromPostal(err error, countryCode string) ErrorResponse {
	switch {
	case err == nil:
		return Internal().WithReason("not_an_error")
	case stderrors.Is(err, postal.ErrMissingArgument):
		return MissingArgument("postcode")
	case stderrors.Is(err, postal.ErrInvalidPostcode):
		return InvalidPostcode(countryCode)
	default:
		return Unknown()
	}
}
